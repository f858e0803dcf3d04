package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPRepository is the ledger of one-time signup codes. It stores and
// returns the most recent code per email; all policy (match comparison,
// expiry window) lives in the auth service.
type OTPRepository interface {
	Put(ctx context.Context, email, code string, createdAt time.Time) error
	GetLatest(ctx context.Context, email string) (code string, createdAt time.Time, err error)
}

type otpRepository struct {
	client       *redis.Client
	queryTimeout time.Duration
}

func NewOTPRepository(client *redis.Client, queryTimeout time.Duration) OTPRepository {
	return &otpRepository{client: client, queryTimeout: queryTimeout}
}

// Keys are retained for a day as housekeeping; the auth service enforces the
// actual validity window against created_at.
const otpKeyRetention = 24 * time.Hour

func otpKey(email string) string {
	return "otp:" + email
}

func (r *otpRepository) Put(ctx context.Context, email, code string, createdAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, otpKey(email), "code", code, "created_at", createdAt.UnixNano())
	pipe.Expire(ctx, otpKey(email), otpKeyRetention)
	if _, err := pipe.Exec(ctx); err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *otpRepository) GetLatest(ctx context.Context, email string) (string, time.Time, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	fields, err := r.client.HGetAll(ctx, otpKey(email)).Result()
	if err != nil {
		return "", time.Time{}, storeErr(err)
	}
	if len(fields) == 0 {
		return "", time.Time{}, nil
	}

	nanos, err := strconv.ParseInt(fields["created_at"], 10, 64)
	if err != nil {
		return "", time.Time{}, nil
	}

	return fields["code"], time.Unix(0, nanos), nil
}
