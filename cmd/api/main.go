package main

import (
	"go.uber.org/fx"

	"github.com/kedai-labs/kopitiam/internal/app"
)

func main() {
	fx.New(app.Module).Run()
}
