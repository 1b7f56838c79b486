package service

import (
	"sync"
	"time"

	"vocab_explorer/internal/assessment"
	"vocab_explorer/internal/model"

	"github.com/google/uuid"
)

// sessionTTL を過ぎた放置セッションは次回アクセス時に回収されます
const sessionTTL = 2 * time.Hour

type sessionEntry struct {
	tenantID uuid.UUID
	session  *assessment.Session
	touched  time.Time
}

// SessionStore は進行中のセッションを保持するメモリ上のストアです。
// セッションは一時データなのでDBには置きません (結果だけ履歴に残る)。
// Session自体はスレッドセーフではないため、操作はストアのロック内で行います。
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*sessionEntry),
	}
}

// Put はセッションを登録します
func (st *SessionStore) Put(tenantID uuid.UUID, sess *assessment.Session) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.evictExpiredLocked()
	st.sessions[sess.ID] = &sessionEntry{
		tenantID: tenantID,
		session:  sess,
		touched:  time.Now(),
	}
}

// With はテナントのセッションをロック内で操作します。
// 他テナントのセッションIDは存在しないものとして扱います。
func (st *SessionStore) With(tenantID, sessionID uuid.UUID, fn func(sess *assessment.Session) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	entry, ok := st.sessions[sessionID]
	if !ok || entry.tenantID != tenantID {
		return model.ErrNotFound
	}
	entry.touched = time.Now()
	return fn(entry.session)
}

// Delete はセッションを破棄します。存在しなくてもエラーにしません。
func (st *SessionStore) Delete(tenantID, sessionID uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()

	entry, ok := st.sessions[sessionID]
	if ok && entry.tenantID == tenantID {
		delete(st.sessions, sessionID)
	}
}

func (st *SessionStore) evictExpiredLocked() {
	cutoff := time.Now().Add(-sessionTTL)
	for id, entry := range st.sessions {
		if entry.touched.Before(cutoff) {
			delete(st.sessions, id)
		}
	}
}
