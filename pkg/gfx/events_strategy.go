package gfx

// EventsConsumerStrategy decides how many pending platform events a single
// loop iteration hands to the event handler before rendering resumes.
type EventsConsumerStrategy interface {
	Consume(poll func(timeoutMs int) (Event, bool), handle func(Event), timeoutMs int) int
}

// DrainAllStrategy waits up to timeoutMs for the first event, then keeps
// consuming without waiting until the queue is empty.
type DrainAllStrategy struct{}

func (DrainAllStrategy) Consume(poll func(timeoutMs int) (Event, bool), handle func(Event), timeoutMs int) int {
	count := 0
	event, ok := poll(timeoutMs)
	if !ok {
		return 0
	}
	handle(event)
	count++
	for {
		event, ok = poll(0)
		if !ok {
			return count
		}
		handle(event)
		count++
	}
}

// DrainMaxStrategy consumes at most Max events per iteration, keeping the
// frame deadline safe from event storms.
type DrainMaxStrategy struct {
	Max int
}

func (s DrainMaxStrategy) Consume(poll func(timeoutMs int) (Event, bool), handle func(Event), timeoutMs int) int {
	max := s.Max
	if max <= 0 {
		max = 1
	}
	count := 0
	event, ok := poll(timeoutMs)
	if !ok {
		return 0
	}
	handle(event)
	count++
	for count < max {
		event, ok = poll(0)
		if !ok {
			return count
		}
		handle(event)
		count++
	}
	return count
}

func DrainAll() EventsConsumerStrategy {
	return DrainAllStrategy{}
}

func DrainMax(max int) EventsConsumerStrategy {
	return DrainMaxStrategy{Max: max}
}
