package tokenstore

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

const keyPrefix = "revoked:"

type Valkey struct {
	client valkey.Client
}

var _ Store = (*Valkey)(nil)

func NewValkey(addr string) (*Valkey, error) {
	client, err := valkey.NewClient(valkey.ClientOption{InitAddress: []string{addr}})
	if err != nil {
		return nil, fmt.Errorf("valkey client: %w", err)
	}
	return &Valkey{client: client}, nil
}

func (v *Valkey) Revoke(ctx context.Context, id string, until time.Time) error {
	seconds := int64(time.Until(until).Seconds()) + 1
	if seconds <= 1 {
		return nil
	}
	cmd := v.client.B().Setex().Key(keyPrefix + id).Seconds(seconds).Value("1").Build()
	return v.client.Do(ctx, cmd).Error()
}

func (v *Valkey) IsRevoked(ctx context.Context, id string) (bool, error) {
	n, err := v.client.Do(ctx, v.client.B().Exists().Key(keyPrefix+id).Build()).AsInt64()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (v *Valkey) Close() {
	v.client.Close()
}
