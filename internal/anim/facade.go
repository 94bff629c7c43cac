package anim

import (
	"image"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
)

// facade: a traveler books a whole trip through one travel service.
type facade struct {
	traveler, service image.Point
	subsystems        [3]subsystem
}

type subsystem struct {
	sprite string
	label  string
	pos    image.Point
	// start is the frame after which the arrow to this subsystem begins.
	start int
}

func (c *facade) Spec() Spec {
	return Spec{
		Pattern:  Facade,
		AssetDir: "structural/facade",
		Assets: []assets.Spec{
			{Name: "traveler", File: "traveler.png"},
			{Name: "service", File: "travel_service.png"},
			{Name: "flight", File: "flight_booking.png"},
			{Name: "car", File: "car_rental.png"},
			{Name: "hotel", File: "hotel_booking.png"},
		},
		LoopLength: 200,
		Phases:     1,
	}
}

func (c *facade) Layout(st geom.Stage) {
	c.traveler = image.Pt(st.X(0.05, 0), st.Y(0.4, 0))
	c.service = image.Pt(st.X(0.4, 0), st.Y(0.35, 0))
	c.subsystems = [3]subsystem{
		{sprite: "flight", label: "FlightBooking.book()", pos: image.Pt(st.X(0.7, 0), st.Y(0.2, 0)), start: 30},
		{sprite: "car", label: "CarRental.reserve()", pos: image.Pt(st.X(0.7, 0), st.Y(0.45, 0)), start: 60},
		{sprite: "hotel", label: "HotelBooking.book()", pos: image.Pt(st.X(0.7, 0), st.Y(0.7, 0)), start: 90},
	}
}

func (c *facade) Draw(sc *Scene) {
	traveler := sc.Blit("traveler", 100, 120, c.traveler)
	service := sc.Blit("service", 150, 150, c.service)

	sc.Arrow(anchor(traveler, geom.MidRight), anchor(service, geom.MidLeft), sc.Frame, canvas.White)
	for _, sub := range c.subsystems {
		r := sc.Blit(sub.sprite, 120, 120, sub.pos)
		if sc.Frame > sub.start {
			sc.Arrow(anchor(service, geom.MidRight), anchor(r, geom.MidLeft), sc.Frame-sub.start, canvas.White)
		}
		sc.Label(sub.label, sub.pos.Sub(sc.Offset(0, 30)), canvas.White)
	}

	sc.Label("Traveler books trip", c.traveler.Sub(sc.Offset(0, 30)), canvas.Yellow)
	sc.Label("TravelService", c.service.Sub(sc.Offset(0, 40)), canvas.Cyan)
}
