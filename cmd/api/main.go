package main

import (
	"go.uber.org/fx"

	appfx "github.com/Memoyu/Mbill/internal/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
