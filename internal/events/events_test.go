package events

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/susu3304/cajachica/internal/config"
)

func TestEncodeWrapsEventInEnvelope(t *testing.T) {
	created := time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)
	data, err := encode(TransactionRecorded{
		ID:          "abc",
		Amount:      "-30",
		Description: "taxi",
		CreatedAt:   created,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got struct {
		Type       string    `json:"type"`
		OccurredAt time.Time `json:"occurred_at"`
		Data       struct {
			ID          string `json:"id"`
			Amount      string `json:"amount"`
			Description string `json:"description"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Type != TypeTransactionRecorded {
		t.Errorf("type = %q, want %q", got.Type, TypeTransactionRecorded)
	}
	if !got.OccurredAt.Equal(created) {
		t.Errorf("occurred_at = %v, want %v", got.OccurredAt, created)
	}
	if got.Data.ID != "abc" || got.Data.Amount != "-30" || got.Data.Description != "taxi" {
		t.Errorf("unexpected data: %+v", got.Data)
	}
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = Nop{}
	if err := p.Publish(context.Background(), TransactionRecorded{ID: "x"}); err != nil {
		t.Errorf("Publish: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		want    string
		wantErr bool
	}{
		{name: "none", cfg: config.Config{EventsBackend: config.EventsNone}, want: "events.Nop"},
		{name: "unset", cfg: config.Config{}, want: "events.Nop"},
		{
			name: "kafka",
			cfg:  config.Config{EventsBackend: config.EventsKafka, KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "t"},
			want: "*events.KafkaPublisher",
		},
		{name: "unknown", cfg: config.Config{EventsBackend: "nats"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Open(&tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer p.Close()
			if got := fmt.Sprintf("%T", p); got != tt.want {
				t.Errorf("publisher = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestKafkaPublisherDoesNotWaitForBatches(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"}, "cajachica.transactions")
	defer p.Close()

	if p.writer.BatchTimeout != kafkaBatchTimeout {
		t.Errorf("BatchTimeout = %v, want %v", p.writer.BatchTimeout, kafkaBatchTimeout)
	}
	if p.writer.BatchTimeout >= time.Second {
		t.Errorf("BatchTimeout %v would stall the conversation loop", p.writer.BatchTimeout)
	}
}

func TestKafkaPublishIsBounded(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the publish timeout")
	}
	// nothing listens on this port, so the write can only end by timing out or failing
	p := NewKafkaPublisher([]string{"127.0.0.1:1"}, "cajachica.transactions")
	defer p.Close()

	start := time.Now()
	err := p.Publish(context.Background(), TransactionRecorded{ID: "x", Amount: "1", CreatedAt: start})
	if err == nil {
		t.Fatal("expected an error with no broker")
	}
	if elapsed := time.Since(start); elapsed > publishTimeout+2*time.Second {
		t.Errorf("Publish took %v, want at most about %v", elapsed, publishTimeout)
	}
}
