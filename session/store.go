package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sbweb/lmsapi"
)

// ErrNotFound is returned for missing or expired sessions.
var ErrNotFound = errors.New("session not found")

// Session binds a browser to its upstream token pair and user record. It is
// the only LMS-related state this application persists; everything else is
// re-fetched from the API on demand.
type Session struct {
	ID           string `gorm:"primaryKey"`
	UserID       int64  `gorm:"index"`
	Email        string
	Username     string
	Role         string
	AccessToken  string
	RefreshToken string
	CreatedAt    time.Time
	LastSeenAt   time.Time
	ExpiresAt    time.Time `gorm:"index"`
}

// User reconstructs the upstream user record held by the session.
func (s *Session) User() lmsapi.User {
	return lmsapi.User{
		ID:       s.UserID,
		Email:    s.Email,
		Username: s.Username,
		Role:     s.Role,
		Enabled:  true,
	}
}

// Store persists sessions. Construct with NewStore and inject; there is no
// package-level instance.
type Store struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewStore(db *gorm.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl}
}

// Create opens a session for an authenticated user.
func (s *Store) Create(user lmsapi.User, accessToken, refreshToken string) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		Email:        user.Email,
		Username:     user.Username,
		Role:         user.Role,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		CreatedAt:    now,
		LastSeenAt:   now,
		ExpiresAt:    now.Add(s.ttl),
	}
	if err := s.db.Create(sess).Error; err != nil {
		return nil, err
	}
	return sess, nil
}

// Get loads a live session. Expired rows are reported as missing.
func (s *Store) Get(id string) (*Session, error) {
	var sess Session
	err := s.db.Where("id = ? AND expires_at > ?", id, time.Now()).First(&sess).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sess, nil
}

// Touch records activity on a session.
func (s *Store) Touch(id string) error {
	return s.db.Model(&Session{}).Where("id = ?", id).
		Update("last_seen_at", time.Now()).Error
}

// UpdateUser refreshes the cached user record after a profile change.
func (s *Store) UpdateUser(id string, user lmsapi.User) error {
	return s.db.Model(&Session{}).Where("id = ?", id).Updates(map[string]interface{}{
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
	}).Error
}

// Delete removes a session. Deleting a missing session is not an error;
// logout must never get stuck.
func (s *Store) Delete(id string) error {
	return s.db.Delete(&Session{}, "id = ?", id).Error
}

// DeleteExpired purges sessions past their expiry and returns their IDs so
// callers can release per-session resources.
func (s *Store) DeleteExpired() ([]string, error) {
	var expired []Session
	if err := s.db.Where("expires_at <= ?", time.Now()).Find(&expired).Error; err != nil {
		return nil, err
	}
	if len(expired) == 0 {
		return nil, nil
	}
	ids := make([]string, len(expired))
	for i, e := range expired {
		ids[i] = e.ID
	}
	if err := s.db.Delete(&Session{}, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
