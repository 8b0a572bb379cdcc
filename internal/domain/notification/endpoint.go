package notification

import (
	"fmt"
	"time"
)

// PushEndpoint is one browser push subscription belonging to a user. A user
// may register the same browser more than once; duplicates share the same
// browserFingerprint and are collapsed at dispatch time, newest registration
// winning. A fingerprint may be empty for clients that cannot compute one;
// such endpoints are never collapsed.
type PushEndpoint struct {
	id                 uint
	userID             uint
	token              string
	endpointURL        string
	p256dhKey          string
	authKey            string
	browserFingerprint string
	isActive           bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewPushEndpoint(userID uint, token, endpointURL, p256dhKey, authKey, browserFingerprint string) (*PushEndpoint, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user id is required")
	}
	if endpointURL == "" {
		return nil, fmt.Errorf("endpoint url is required")
	}
	now := time.Now()
	return &PushEndpoint{
		userID:             userID,
		token:              token,
		endpointURL:        endpointURL,
		p256dhKey:          p256dhKey,
		authKey:            authKey,
		browserFingerprint: browserFingerprint,
		isActive:           true,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructPushEndpoint rebuilds a PushEndpoint from persisted state.
func ReconstructPushEndpoint(
	id uint,
	userID uint,
	token string,
	endpointURL string,
	p256dhKey string,
	authKey string,
	browserFingerprint string,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
) *PushEndpoint {
	return &PushEndpoint{
		id:                 id,
		userID:             userID,
		token:              token,
		endpointURL:        endpointURL,
		p256dhKey:          p256dhKey,
		authKey:            authKey,
		browserFingerprint: browserFingerprint,
		isActive:           isActive,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (e *PushEndpoint) ID() uint                   { return e.id }
func (e *PushEndpoint) UserID() uint               { return e.userID }
func (e *PushEndpoint) Token() string              { return e.token }
func (e *PushEndpoint) EndpointURL() string        { return e.endpointURL }
func (e *PushEndpoint) P256dhKey() string          { return e.p256dhKey }
func (e *PushEndpoint) AuthKey() string            { return e.authKey }
func (e *PushEndpoint) BrowserFingerprint() string { return e.browserFingerprint }
func (e *PushEndpoint) IsActive() bool             { return e.isActive }
func (e *PushEndpoint) CreatedAt() time.Time       { return e.createdAt }
func (e *PushEndpoint) UpdatedAt() time.Time       { return e.updatedAt }

func (e *PushEndpoint) SetID(id uint) { e.id = id }

// Touch bumps updatedAt so a re-registered endpoint wins fingerprint
// deduplication over older rows.
func (e *PushEndpoint) Touch() {
	e.updatedAt = time.Now()
}

// Deactivate marks the subscription dead. Called when the push service
// reports the endpoint gone (expired or unsubscribed).
func (e *PushEndpoint) Deactivate() {
	if !e.isActive {
		return
	}
	e.isActive = false
	e.updatedAt = time.Now()
}

func (e *PushEndpoint) UpdateKeys(endpointURL, p256dhKey, authKey string) {
	e.endpointURL = endpointURL
	e.p256dhKey = p256dhKey
	e.authKey = authKey
	e.isActive = true
	e.updatedAt = time.Now()
}
