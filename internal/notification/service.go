package notification

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"taskmanager-backend/pkg/mailer"
)

// JobKind identifies which account email a job renders.
type JobKind string

const (
	JobWelcome      JobKind = "welcome"
	JobCancellation JobKind = "cancellation"
)

// Job is a queued account email.
type Job struct {
	Kind  JobKind
	Email string
	Name  string
}

const sendTimeout = 15 * time.Second

// Service delivers account emails from a bounded queue drained by a fixed set
// of workers. Enqueueing never blocks and delivery errors are only logged.
type Service struct {
	sender      mailer.Sender
	jobQueue    chan Job
	workerWg    sync.WaitGroup
	workerCount int
	started     bool
	stopped     bool
	mu          sync.Mutex
}

// NewService creates a notification service. Call Start before queueing.
func NewService(sender mailer.Sender, workerCount, queueSize int) *Service {
	if workerCount <= 0 {
		workerCount = 1
	}
	if queueSize <= 0 {
		queueSize = 100
	}

	return &Service{
		sender:      sender,
		jobQueue:    make(chan Job, queueSize),
		workerCount: workerCount,
	}
}

// Start launches the workers.
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}

	for i := 0; i < s.workerCount; i++ {
		s.workerWg.Add(1)
		go s.worker(i)
	}
	s.started = true
	log.Printf("[Notification] Started %d workers", s.workerCount)
}

// Stop closes the queue and waits until every queued job has been processed.
func (s *Service) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.jobQueue)
	s.mu.Unlock()

	s.workerWg.Wait()
	log.Println("[Notification] All workers stopped")
}

// AccountCreated queues the welcome email.
func (s *Service) AccountCreated(email, name string) {
	s.queue(Job{Kind: JobWelcome, Email: email, Name: name})
}

// AccountDeleted queues the cancellation notice.
func (s *Service) AccountDeleted(email, name string) {
	s.queue(Job{Kind: JobCancellation, Email: email, Name: name})
}

func (s *Service) queue(job Job) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		log.Printf("[Notification] Service stopped, dropping %s email for %s", job.Kind, job.Email)
		return false
	}

	select {
	case s.jobQueue <- job:
		return true
	default:
		log.Printf("[Notification] Queue full, dropping %s email for %s", job.Kind, job.Email)
		return false
	}
}

func (s *Service) worker(id int) {
	defer s.workerWg.Done()

	for job := range s.jobQueue {
		s.processJob(job)
	}

	log.Printf("[Notification] Worker %d stopped", id)
}

func (s *Service) processJob(job Job) {
	msg, err := render(job)
	if err != nil {
		log.Printf("[Notification] %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := s.sender.Send(ctx, msg); err != nil {
		log.Printf("[Notification] Failed to send %s email to %s: %v", job.Kind, job.Email, err)
	}
}

func render(job Job) (mailer.Message, error) {
	msg := mailer.Message{ToAddress: job.Email, ToName: job.Name}

	switch job.Kind {
	case JobWelcome:
		msg.Subject = "Welcome"
		msg.Text = fmt.Sprintf("Welcome to the task manager app, %s.", job.Name)
	case JobCancellation:
		msg.Subject = "Your account has been deleted"
		msg.Text = fmt.Sprintf("Hello %s,\n\nyour user %s has been deleted from the task manager app.\n\nBest regards", job.Name, job.Email)
	default:
		return mailer.Message{}, fmt.Errorf("unknown job kind %q", job.Kind)
	}
	return msg, nil
}
