package lib

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

var scheduler gocron.Scheduler

// NewScheduler Replace scheduler instance with custom implementation
func NewScheduler(s gocron.Scheduler) {
	scheduler = s
}

func GetScheduler() (gocron.Scheduler, error) {
	if scheduler != nil {
		return scheduler, nil
	}
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("Error initializing Scheduler: %s\n", err.Error())
		return nil, err
	}
	sched.Start()
	scheduler = sched
	return sched, nil
}

// CreateIntervalJob registers a repeating job and returns its ID so callers
// can remove it when their view unmounts.
func CreateIntervalJob(duration time.Duration, handler any, args ...any) (*uuid.UUID, error) {
	sched, err := GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return nil, err
	}
	j, err := sched.NewJob(
		gocron.DurationJob(duration),
		gocron.NewTask(handler, args...),
	)
	if err != nil {
		return nil, err
	}
	id := j.ID()
	return &id, nil
}

// RemoveJob cancels a registered job. Removing an already-removed job is
// not an error.
func RemoveJob(id *uuid.UUID) {
	if id == nil {
		return
	}
	sched, err := GetScheduler()
	if err != nil {
		return
	}
	if err := sched.RemoveJob(*id); err != nil {
		log.Printf("Error removing job %s: %s\n", id.String(), err.Error())
	}
}
