package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/pradeepaul/devConnector/internal/model"
)

type EventPublisher interface {
	PublishUserRegistered(user *model.User) error
	PublishPostCreated(post *model.Post) error
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (EventPublisher, error) {
	nc, err := nats.Connect(natsURL)

	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

type UserRegisteredEvent struct {
	EventType    string    `json:"event_type"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

type PostCreatedEvent struct {
	EventType string    `json:"event_type"`
	PostID    uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *NatsPublisher) PublishUserRegistered(user *model.User) error {
	event := UserRegisteredEvent{
		EventType:    "user.registered",
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		RegisteredAt: time.Now(),
	}

	return p.publish("user.registered", event)
}

func (p *NatsPublisher) PublishPostCreated(post *model.Post) error {
	event := PostCreatedEvent{
		EventType: "post.created",
		PostID:    post.ID,
		UserID:    post.UserID,
		CreatedAt: post.CreatedAt,
	}

	return p.publish("post.created", event)
}

func (p *NatsPublisher) publish(subject string, event interface{}) error {
	eventJSON, err := json.Marshal(event)

	if err != nil {
		log.Printf("Error marshalling event JSON: %v", err)
		return err
	}

	err = p.conn.Publish(subject, eventJSON)

	if err != nil {
		log.Printf("Error publishing to NATS: %v", err)
		return err
	}

	log.Printf("Published event to NATS on subject '%s'", subject)

	return nil
}
