//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"notistack/internal/notif"
)

func InitializeApplication() (*Application, error) {
	wire.Build(
		ProvideConfig,
		ProvideDatabaseConnection,
		ProvideNotificationStore,
		ProvideRegistry,
		ProvideBroadcaster,
		notif.NewNotificationService,
		notif.NewHTTPHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
