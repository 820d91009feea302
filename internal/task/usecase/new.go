package usecase

import (
	"taskie/internal/session"
	pkgLog "taskie/pkg/log"
	"taskie/pkg/taskie"
)

type implUseCase struct {
	l       pkgLog.Logger
	api     taskie.ITaskie
	session *session.Session
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, api taskie.ITaskie, sess *session.Session) *implUseCase {
	return &implUseCase{
		l:       l,
		api:     api,
		session: sess,
	}
}
