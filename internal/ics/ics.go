package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

type Event struct {
	Title       string
	Description string
	Location    string
	Start       time.Time
	DurationMin int
}

// Generate renders a single-event calendar the recipient can import. The
// event is marked CONFIRMED, mirroring what the confirmation email promises.
func Generate(ev Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	e := cal.AddEvent(uuid.NewString())
	e.SetCreatedTime(time.Now())
	e.SetDtStampTime(time.Now())
	e.SetStartAt(ev.Start)
	e.SetEndAt(ev.Start.Add(time.Duration(ev.DurationMin) * time.Minute))
	e.SetSummary(ev.Title)
	e.SetDescription(ev.Description)
	e.SetStatus(ical.ObjectStatusConfirmed)

	if ev.Location != "" {
		e.SetLocation(ev.Location)
	}

	return cal.Serialize()
}
