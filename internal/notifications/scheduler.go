package notifications

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

// Scheduler owns the recurring daily notification jobs, at most one per
// recipient. Replacing a schedule cancels the old timer before arming the
// new one; a queued firing of a replaced schedule is discarded through the
// generation stamp check in fire.
type Scheduler struct {
	logger *zap.SugaredLogger
	cron   *cron.Cron
	loc    *time.Location

	mu         sync.Mutex
	jobs       map[int64]*job
	generation uint64
}

type job struct {
	entryID    cron.EntryID
	generation uint64
}

func NewScheduler(logger *zap.SugaredLogger, loc *time.Location) *Scheduler {
	c := cron.New(cron.WithLocation(loc))
	c.Start()

	closer.Bind(func() {
		<-c.Stop().Done()
	})

	return &Scheduler{
		logger: logger,
		cron:   c,
		loc:    loc,
		jobs:   make(map[int64]*job),
	}
}

// Schedule installs a daily job for the recipient at the given local time,
// replacing any existing one. onFire receives the recipient id at every
// firing. Returns the next firing instant.
func (s *Scheduler) Schedule(recipientID int64, hour, minute int, onFire func(recipientID int64)) (time.Time, error) {
	sched, err := cron.ParseStandard(cronSpec(hour, minute))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse cron spec: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.jobs[recipientID]; ok {
		s.cron.Remove(prev.entryID)
		delete(s.jobs, recipientID)
		s.logger.Infow("replaced existing schedule", "recipient", recipientID)
	}

	s.generation++
	gen := s.generation

	entryID := s.cron.Schedule(sched, cron.FuncJob(func() {
		s.fire(recipientID, gen, onFire)
	}))
	s.jobs[recipientID] = &job{entryID: entryID, generation: gen}

	next := sched.Next(time.Now().In(s.loc))
	s.logger.Infow("scheduled daily notification",
		"recipient", recipientID,
		"time", fmt.Sprintf("%02d:%02d", hour, minute),
		"next", next,
	)

	return next, nil
}

// Cancel removes the recipient's schedule. No-op when none exists.
func (s *Scheduler) Cancel(recipientID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.jobs[recipientID]
	if !ok {
		return
	}

	s.cron.Remove(prev.entryID)
	delete(s.jobs, recipientID)
	s.logger.Infow("cancelled daily notification", "recipient", recipientID)
}

// Scheduled reports whether the recipient currently has an active schedule.
func (s *Scheduler) Scheduled(recipientID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.jobs[recipientID]
	return ok
}

// fire invokes the callback unless the job was replaced or cancelled after
// this firing was queued.
func (s *Scheduler) fire(recipientID int64, gen uint64, onFire func(int64)) {
	s.mu.Lock()
	current, ok := s.jobs[recipientID]
	stale := !ok || current.generation != gen
	s.mu.Unlock()

	if stale {
		s.logger.Debugw("discarding stale firing", "recipient", recipientID)
		return
	}

	onFire(recipientID)
}

func cronSpec(hour, minute int) string {
	return fmt.Sprintf("%d %d * * *", minute, hour)
}
