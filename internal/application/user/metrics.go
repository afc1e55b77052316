package user

import (
	"errors"

	"github.com/xiebiao/postboard/internal/domain/user"
	"github.com/xiebiao/postboard/pkg/metrics"
)

// recordMutation 记录用户写操作结果
// result取值：success / duplicate / not_found / invalid / error
func recordMutation(operation string, err error) {
	metrics.IncCounterVec(metrics.UserMutationsTotal, map[string]string{
		"operation": operation,
		"result":    mutationResult(err),
	})
}

func mutationResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, user.ErrEmailTaken):
		return "duplicate"
	case errors.Is(err, user.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, user.ErrInvalidName):
		return "invalid"
	default:
		return "error"
	}
}
