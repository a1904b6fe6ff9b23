package events

import "github.com/sirupsen/logrus"

type Event struct {
	BookingID uint
	UserID    *uint
	Action    string
	Metadata  any
}

// Dispatcher escribe la bitácora de reservas fuera del camino de la
// petición. La bitácora puede perder eventos bajo presión, la API no se
// bloquea por ella.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		// sin logger los eventos se descartan (útil en tests)
		if d.logger == nil {
			continue
		}
		if err := d.logger.Log(
			ev.BookingID,
			ev.UserID,
			ev.Action,
			ev.Metadata,
		); err != nil {
			logrus.WithError(err).Warn("booking event write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		logrus.Warn("booking event queue full, dropping event")
	}
}
