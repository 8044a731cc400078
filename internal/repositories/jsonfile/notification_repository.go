package jsonfile

import (
	"fmt"
	"path/filepath"

	"github.com/jogossc/boletins-backend/internal/models"
)

// NotificationRepository persists the notification lists: the active list
// the frontend polls and the history of notifications the user dismissed.
// The history file is written by the frontend when a notification is read;
// this side only consults it to avoid re-raising dismissed results.
type NotificationRepository struct {
	store *Store
}

func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

func (r *NotificationRepository) activePath() string {
	return filepath.Join(r.store.ResultsDir, "notificacoes_ativas.json")
}

func (r *NotificationRepository) historyPath() string {
	return filepath.Join(r.store.ResultsDir, "notificacoes_historico.json")
}

func (r *NotificationRepository) LoadActive() ([]*models.Notification, error) {
	return r.load(r.activePath())
}

func (r *NotificationRepository) LoadHistory() ([]*models.Notification, error) {
	return r.load(r.historyPath())
}

func (r *NotificationRepository) load(path string) ([]*models.Notification, error) {
	var list []*models.Notification
	if err := readJSON(path, &list); err != nil {
		if notExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	return list, nil
}

func (r *NotificationRepository) SaveActive(list []*models.Notification) error {
	if list == nil {
		list = []*models.Notification{}
	}
	if err := writeJSON(r.activePath(), list); err != nil {
		return fmt.Errorf("store notifications: %w", err)
	}
	return nil
}
