package services

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/exp/slog"

	"github.com/jogossc/boletins-backend/internal/games"
	"github.com/jogossc/boletins-backend/internal/models"
	"github.com/jogossc/boletins-backend/internal/repositories"
)

// Compile-time check to ensure NotificationServiceImpl implements NotificationService
var _ NotificationService = (*NotificationServiceImpl)(nil)

// NotificationServiceImpl diffs the recent results of every game against
// what was already notified and appends the novelties to the active list.
type NotificationServiceImpl struct {
	resultRepo repositories.ResultRepository
	notifRepo  repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationServiceImpl
func NewNotificationService(
	resultRepo repositories.ResultRepository,
	notifRepo repositories.NotificationRepository,
) *NotificationServiceImpl {
	return &NotificationServiceImpl{resultRepo: resultRepo, notifRepo: notifRepo}
}

// Generate raises one notification per not-yet-notified recent result. A
// result is identified by (game, slip reference, wager index); both the
// active list and the dismissed history suppress re-notification.
func (s *NotificationServiceImpl) Generate(ctx context.Context) (int, error) {
	recent, err := s.resultRepo.LoadAllRecent()
	if err != nil {
		return 0, err
	}
	active, err := s.notifRepo.LoadActive()
	if err != nil {
		return 0, err
	}
	history, err := s.notifRepo.LoadHistory()
	if err != nil {
		return 0, err
	}

	known := make(map[string]struct{}, len(active)+len(history))
	for _, n := range active {
		known[n.ID] = struct{}{}
	}
	for _, n := range history {
		known[n.ID] = struct{}{}
	}

	gameIDs := make([]string, 0, len(recent))
	for id := range recent {
		gameIDs = append(gameIDs, id)
	}
	sort.Strings(gameIDs)

	added := 0
	for _, gameID := range gameIDs {
		if err := ctx.Err(); err != nil {
			return added, err
		}
		for _, res := range recent[gameID] {
			id := fmt.Sprintf("%s_%s_%d", gameID, res.Slip.Reference, res.Wager.Index)
			if _, seen := known[id]; seen {
				continue
			}
			known[id] = struct{}{}

			details := *res
			details.Game = gameID
			details.NotificationID = id

			active = append(active, &models.Notification{
				ID:       id,
				Game:     gameID,
				Date:     res.VerifiedAt,
				Title:    "Novo resultado " + games.DisplayName(gameID),
				Subtitle: "Boletim: " + res.Slip.Reference,
				Summary:  notificationSummary(res),
				Details:  &details,
			})
			added++
		}
	}

	if added > 0 {
		if err := s.notifRepo.SaveActive(active); err != nil {
			return 0, err
		}
	}
	slog.Info("notifications generated", "added", added, "active", len(active))
	return added, nil
}

// notificationSummary renders the one-line result digest shown in the
// notification list.
func notificationSummary(res *models.VerificationResult) string {
	var base string
	m := res.Matches
	switch {
	case m == nil:
		if res.Won {
			base = "Código premiado"
		} else {
			base = "Código não premiado"
		}
	case m.Stars != nil:
		base = fmt.Sprintf("%d números + %d estrelas", m.Numbers, *m.Stars)
	case m.LuckyNumber != nil && *m.LuckyNumber:
		base = fmt.Sprintf("%d números + Nº da Sorte", m.Numbers)
	case m.DreamNumber != nil && *m.DreamNumber:
		base = fmt.Sprintf("%d números + Dream", m.Numbers)
	default:
		base = fmt.Sprintf("%d números", m.Numbers)
	}
	if res.Won && res.TotalValue != "" {
		return fmt.Sprintf("%s, prémio %s", base, res.TotalValue)
	}
	return base
}
