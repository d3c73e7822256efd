package services

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"hashlab/internal/dao"
	"hashlab/internal/metrics"
	"hashlab/internal/models"
	"hashlab/internal/notification"
	apperrors "hashlab/pkg/errors"
	"hashlab/pkg/logger"
)

const (
	ErrMsgAttackTypeRequired = "attackType is required"
	AttackCompletedMessage   = "Attack completed (simulated)"

	// TimestampLayout matches JavaScript's Date.toISOString.
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

type AttackServiceMethods interface {
	RunAttack(attackType string) (*models.AttackRun, error)
}

type AttackOpts struct {
	crackedPassword string
	minSeconds      float64
	spreadSeconds   float64
	random          func() float64
	now             func() time.Time
	notifier        notification.Notifier
}

type AttackOptFunc func(*AttackOpts)

// attackService fabricates attack output. It never reads the rule set and
// never cracks anything: a stored hash is always paired with the
// configured cracked password.
type attackService struct {
	AttackOpts
	artifactDao dao.ArtifactDAO
	logger      *logger.Logger
	mu          sync.Mutex
}

func NewAttackService(artifactDao dao.ArtifactDAO, opts ...AttackOptFunc) AttackServiceMethods {
	o := AttackOpts{
		crackedPassword: "hello123",
		minSeconds:      0.5,
		spreadSeconds:   3,
		random:          rand.Float64,
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return &attackService{
		AttackOpts:  o,
		artifactDao: artifactDao,
		logger:      logger.Default(),
	}
}

func WithCrackedPassword(password string) AttackOptFunc {
	return func(o *AttackOpts) {
		o.crackedPassword = password
	}
}

// WithDurationRange draws durations from [min, min+spread).
func WithDurationRange(minSeconds, spreadSeconds float64) AttackOptFunc {
	return func(o *AttackOpts) {
		o.minSeconds = minSeconds
		o.spreadSeconds = spreadSeconds
	}
}

// WithRandom replaces the uniform [0,1) source used for durations.
func WithRandom(random func() float64) AttackOptFunc {
	return func(o *AttackOpts) {
		o.random = random
	}
}

func WithClock(now func() time.Time) AttackOptFunc {
	return func(o *AttackOpts) {
		o.now = now
	}
}

func WithNotifier(notifier notification.Notifier) AttackOptFunc {
	return func(o *AttackOpts) {
		o.notifier = notifier
	}
}

// RunAttack writes the elapsed-time and result artifacts and appends one
// history entry. Concurrent runs are serialized so no append is lost.
func (s *attackService) RunAttack(attackType string) (*models.AttackRun, error) {
	if attackType == "" {
		return nil, apperrors.NewValidationError("attackType", ErrMsgAttackTypeRequired)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seconds := math.Round((s.random()*s.spreadSeconds+s.minSeconds)*100) / 100
	elapsed := strconv.FormatFloat(seconds, 'f', 2, 64)
	if err := s.artifactDao.WriteArtifact(models.ElapsedArtifact, []byte(elapsed)); err != nil {
		s.logger.WithArtifact(models.ElapsedArtifact, "write").WithError(err).Error("Failed to store elapsed time")
		return nil, err
	}

	hashData, err := readOrDefault(s.artifactDao, models.HashesArtifact, nil)
	if err != nil {
		return nil, err
	}
	hash := strings.TrimSpace(string(hashData))

	result := ""
	if hash != "" {
		result = fmt.Sprintf("%s:%s\n", hash, s.crackedPassword)
	}
	if err := s.artifactDao.WriteArtifact(models.ResultArtifact, []byte(result)); err != nil {
		s.logger.WithArtifact(models.ResultArtifact, "write").WithError(err).Error("Failed to store result")
		return nil, err
	}

	history, err := loadHistory(s.artifactDao)
	if err != nil {
		s.logger.WithArtifact(models.HistoryArtifact, "read").WithError(err).Error("Failed to load history")
		return nil, err
	}

	seconds, _ = strconv.ParseFloat(elapsed, 64)
	history = append(history, models.HistoryEntry{
		AttackType: attackType,
		Time:       seconds,
		Timestamp:  s.now().UTC().Format(TimestampLayout),
	})
	if err := writeJSON(s.artifactDao, models.HistoryArtifact, history); err != nil {
		s.logger.WithArtifact(models.HistoryArtifact, "write").WithError(err).Error("Failed to store history")
		return nil, err
	}

	metrics.MetricAttacks.WithLabelValues(attackType).Inc()
	metrics.MetricAttackSeconds.Observe(seconds)

	s.logger.WithFields(logger.Fields{
		"attack_type": attackType,
		"elapsed":     elapsed,
		"cracked":     hash != "",
		"history_len": len(history),
	}).Info("Simulated attack completed")

	s.notify(attackType, elapsed, hash != "")

	return &models.AttackRun{
		Message:    AttackCompletedMessage,
		AttackType: attackType,
		Time:       elapsed,
	}, nil
}

func (s *attackService) notify(attackType, elapsed string, cracked bool) {
	if s.notifier == nil {
		return
	}

	msg := notification.Message{
		Title:       "Simulated attack completed",
		Description: fmt.Sprintf("%s finished in %ss", attackType, elapsed),
		Severity:    "info",
		Fields: map[string]string{
			"attack_type": attackType,
			"time":        elapsed,
			"cracked":     strconv.FormatBool(cracked),
		},
		Timestamp: s.now(),
	}

	go func() {
		if err := s.notifier.Send(msg); err != nil {
			s.logger.WithError(err).Warn("Failed to send attack notification")
		}
	}()
}
