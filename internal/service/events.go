package service

// Publisher receives domain events after a successful write.
type Publisher interface {
	Publish(action string, payload interface{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, interface{}) {}

func publisherOrNoop(p Publisher) Publisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}
