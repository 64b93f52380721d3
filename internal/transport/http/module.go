package http

import (
	"go.uber.org/fx"

	boardtransport "github.com/kedai-labs/kopitiam/internal/transport/http/board"
	menutransport "github.com/kedai-labs/kopitiam/internal/transport/http/menu"
	ordertransport "github.com/kedai-labs/kopitiam/internal/transport/http/order"
)

// Module aggregates all HTTP transport handlers.
var Module = fx.Options(
	menutransport.Module,
	ordertransport.Module,
	boardtransport.Module,
)
