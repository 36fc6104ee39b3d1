package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisPublisher_DeliversInOrder(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	sub := rdb.Subscribe(ctx, DefaultChannel)
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	ch := sub.Channel()

	borrower := strings.Repeat("b", 32)
	at := time.Now().UTC()
	pub := NewRedisPublisher(rdb, "")
	err := pub.Publish(ctx,
		Event{Type: TypeLoanDefaulted, LoanID: 7, Borrower: borrower, Amount: 1000, At: at},
		Event{Type: TypeCollateralLiquidated, LoanID: 7, Borrower: borrower, At: at},
	)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	want := []Type{TypeLoanDefaulted, TypeCollateralLiquidated}
	for i, wt := range want {
		select {
		case msg := <-ch:
			var got Event
			if err := json.Unmarshal([]byte(msg.Payload), &got); err != nil {
				t.Fatalf("payload %d: %v", i, err)
			}
			if got.Type != wt || got.LoanID != 7 || got.Borrower != borrower {
				t.Fatalf("event %d = %+v, want type %s", i, got, wt)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}

func TestRedisPublisher_BrokerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	pub := NewRedisPublisher(rdb, "custom.events")
	if err := pub.Publish(context.Background(), Event{Type: TypeLoanRequested, LoanID: 1}); err == nil {
		t.Fatal("want error when the broker is unreachable")
	}
}

func TestNopPublisher(t *testing.T) {
	if err := (Nop{}).Publish(context.Background(), Event{Type: TypeLoanRepaid}); err != nil {
		t.Fatalf("nop publish: %v", err)
	}
}
