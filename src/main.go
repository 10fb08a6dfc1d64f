package main

import (
	"blacktie/src/api"
	"blacktie/src/lib"
	"blacktie/src/session"
	"blacktie/src/types"
	"blacktie/src/views"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	s, err := session.Current()
	if err != nil {
		log.Fatalf("No session found. Log in first: %s\n", err.Error())
	}
	claims, err := session.Claims()
	if err != nil {
		log.Fatalf("Stored session is unusable: %s\n", err.Error())
	}
	log.Printf("Signed in as %s (%s)\n", claims.Username, claims.Role)

	client := api.NewClient()
	ctx := context.Background()

	myBookings := views.NewRenterBookings(client, s.User.ID, types.BookingQueryFilters{})
	if err := myBookings.Load(ctx); err != nil {
		log.Fatalf("Could not load bookings: %s\n", err.Error())
	}
	if err := myBookings.Start(); err != nil {
		log.Fatalf("Could not start countdown ticker: %s\n", err.Error())
	}
	defer myBookings.Stop()

	center := views.NewNotificationCenter(client)
	if err := center.Load(ctx); err != nil {
		log.Printf("Could not load notifications: %s\n", err.Error())
	}
	if err := center.Start(); err != nil {
		log.Printf("Could not start notification poll: %s\n", err.Error())
	}
	defer center.Stop()

	for _, row := range myBookings.Rows() {
		log.Printf("Booking %d [%s] %s: %s\n", row.Booking.ID, row.Booking.Status, row.Countdown.Label, row.Countdown.Remaining)
	}
	log.Printf("Unread notifications: %d\n", center.Unread())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if sched, err := lib.GetScheduler(); err == nil {
		if err := sched.Shutdown(); err != nil {
			log.Printf("Error shutting down scheduler: %s\n", err.Error())
		}
	}
}
