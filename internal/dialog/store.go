package dialog

import (
	"sync"
)

// Store хранит сессии диалога по telegram ID пользователя.
// Только в памяти процесса, без персистентности.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewStore создаёт новое хранилище сессий
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*Session),
	}
}

// Get возвращает сессию пользователя или nil, если её нет
func (st *Store) Get(telegramID int64) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.sessions[telegramID]
}

// Put сохраняет сессию пользователя, заменяя существующую
func (st *Store) Put(telegramID int64, s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.sessions[telegramID] = s
}

// Delete удаляет сессию пользователя
func (st *Store) Delete(telegramID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, telegramID)
}
