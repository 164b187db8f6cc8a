package orders

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync/atomic"
	"time"

	"cape/internal/models"
)

// Submission policy. Fixed, no runtime override.
const (
	APITimeout       = 10 * time.Second
	MaxRetryAttempts = 3
	RetryDelay       = 1 * time.Second
	FailureRate      = 0.1

	minLatency    = 1500 * time.Millisecond
	latencyJitter = 1000 * time.Millisecond
)

const orderIDChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Service submits orders against the simulated backend. The clock, the
// random source and the sleep primitive are injectable so tests can
// force deterministic outcomes.
type Service struct {
	rng         *rand.Rand
	now         func() time.Time
	sleep       func(ctx context.Context, d time.Duration) error
	timeout     time.Duration
	retryDelay  time.Duration
	maxAttempts int
	failureRate float64

	attempts atomic.Int64
}

// Option tweaks the service policy. Production code uses the defaults;
// tests pin the clock, the random source and the sleep primitive.
type Option func(*Service)

// WithSeed fixes the random source.
func WithSeed(seed int64) Option {
	return func(s *Service) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithFailureRate overrides the injected failure probability.
func WithFailureRate(rate float64) Option {
	return func(s *Service) { s.failureRate = rate }
}

// WithClock overrides the service clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSleep overrides the sleep primitive used for simulated latency
// and retry backoff.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(s *Service) { s.sleep = sleep }
}

// NewService creates a submitter with the production policy and a
// time-seeded random source.
func NewService(opts ...Option) *Service {
	s := &Service{
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
		sleep:       sleepContext,
		timeout:     APITimeout,
		retryDelay:  RetryDelay,
		maxAttempts: MaxRetryAttempts,
		failureRate: FailureRate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// AttemptCount reports how many simulated network attempts the service
// has made over its lifetime.
func (s *Service) AttemptCount() int64 {
	return s.attempts.Load()
}

// Validate runs the local, synchronous order checks. The first failing
// rule is returned; none of them is ever retried.
func (s *Service) Validate(details models.OrderDetails) error {
	if len(details.Items) == 0 {
		return &SubmissionError{Code: CodeEmptyOrder, Message: "Заказ не может быть пустым"}
	}
	if strings.TrimSpace(details.CustomerInfo.Name) == "" {
		return &SubmissionError{Code: CodeMissingName, Message: "Имя обязательно для заполнения"}
	}
	if strings.TrimSpace(details.CustomerInfo.Phone) == "" {
		return &SubmissionError{Code: CodeMissingPhone, Message: "Телефон обязателен для заполнения"}
	}
	if strings.TrimSpace(details.CustomerInfo.Address) == "" {
		return &SubmissionError{Code: CodeMissingAddress, Message: "Адрес доставки обязателен для заполнения"}
	}
	if details.DeliveryTime == nil {
		return &SubmissionError{Code: CodeMissingDeliveryTime, Message: "Время доставки должно быть выбрано"}
	}
	if details.Total <= 0 {
		return &SubmissionError{Code: CodeInvalidTotal, Message: "Сумма заказа должна быть больше нуля"}
	}
	return nil
}

// Submit validates the order and pushes it through the retry loop:
// up to maxAttempts tries, each bounded by the attempt timeout, with a
// linearly growing pause in between. Validation failures short-circuit
// before the first attempt. Returns the generated order id on success.
func (s *Service) Submit(ctx context.Context, details models.OrderDetails) (string, error) {
	if err := s.Validate(details); err != nil {
		return "", err
	}

	submission := models.OrderSubmission{
		OrderID:      s.generateOrderID(),
		Items:        details.Items,
		CustomerInfo: details.CustomerInfo,
		DeliveryTime: *details.DeliveryTime,
		Totals: models.OrderTotals{
			Subtotal:    details.Subtotal,
			DeliveryFee: details.DeliveryFee,
			Total:       details.Total,
		},
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Status:    models.OrderStatusPending,
	}

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		orderID, err := s.attemptSubmission(ctx, submission)
		if err == nil {
			return orderID, nil
		}
		lastErr = err
		log.Printf("orders: submission attempt %d failed: %v", attempt, err)

		// Validation-class failures are final even mid-loop.
		if se := AsSubmissionError(err); se != nil && IsValidationCode(se.Code) {
			return "", err
		}

		if attempt < s.maxAttempts {
			if err := s.sleep(ctx, s.retryDelay*time.Duration(attempt)); err != nil {
				return "", err
			}
		}
	}

	return "", &SubmissionError{
		Code:    CodeMaxRetriesExceeded,
		Message: "Не удалось оформить заказ после нескольких попыток",
		Details: map[string]interface{}{
			"attempts":   s.maxAttempts,
			"last_error": lastErr.Error(),
		},
	}
}

// attemptSubmission is one simulated backend call: a random delay raced
// against the attempt timeout, then a failure draw.
func (s *Service) attemptSubmission(ctx context.Context, submission models.OrderSubmission) (string, error) {
	s.attempts.Add(1)

	attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	latency := minLatency + time.Duration(s.rng.Float64()*float64(latencyJitter))
	if err := s.sleep(attemptCtx, latency); err != nil {
		return "", &SubmissionError{Code: CodeTimeout, Message: "Превышено время ожидания"}
	}

	if s.rng.Float64() < s.failureRate {
		return "", s.randomFailure()
	}

	return submission.OrderID, nil
}

// randomFailure picks uniformly among the transient failure modes.
func (s *Service) randomFailure() *SubmissionError {
	failures := []*SubmissionError{
		{Code: CodeNetworkError, Message: "Ошибка сети. Проверьте подключение к интернету."},
		{Code: CodeServerError, Message: "Ошибка сервера. Попробуйте позже."},
		{Code: CodeValidationError, Message: "Ошибка валидации данных."},
	}
	return failures[s.rng.Intn(len(failures))]
}

// generateOrderID builds an id of the form ORD-<unix-millis>-<6 chars>.
func (s *Service) generateOrderID() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = orderIDChars[s.rng.Intn(len(orderIDChars))]
	}
	return fmt.Sprintf("ORD-%d-%s", s.now().UnixMilli(), suffix)
}
