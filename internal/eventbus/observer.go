package eventbus

import "pageswipe/internal/carousel"

// Observer publishes carousel notifications on the bus
type Observer struct {
	Bus        EventBus
	CarouselID string
}

// NewObserver returns a carousel.Observer that forwards to bus
func NewObserver(bus EventBus, carouselID string) *Observer {
	return &Observer{Bus: bus, CarouselID: carouselID}
}

func (o *Observer) OnPageTurn(newIndex int) {
	o.Bus.Publish(PageTurnedEvent{CarouselID: o.CarouselID, Index: newIndex})
}

func (o *Observer) OnThreshold(dir carousel.Direction) {
	o.Bus.Publish(ThresholdCrossedEvent{CarouselID: o.CarouselID, Direction: int(dir)})
}
