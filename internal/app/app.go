package app

import (
	"go.uber.org/fx"

	"github.com/kedai-labs/kopitiam/internal/board"
	"github.com/kedai-labs/kopitiam/internal/cache"
	"github.com/kedai-labs/kopitiam/internal/config"
	"github.com/kedai-labs/kopitiam/internal/database"
	"github.com/kedai-labs/kopitiam/internal/logger"
	"github.com/kedai-labs/kopitiam/internal/messaging"
	"github.com/kedai-labs/kopitiam/internal/observability"
	repositorymenu "github.com/kedai-labs/kopitiam/internal/repository/menu"
	repositoryorder "github.com/kedai-labs/kopitiam/internal/repository/order"
	httpserver "github.com/kedai-labs/kopitiam/internal/server/http"
	servicemenu "github.com/kedai-labs/kopitiam/internal/service/menu"
	serviceorder "github.com/kedai-labs/kopitiam/internal/service/order"
	transporthttp "github.com/kedai-labs/kopitiam/internal/transport/http"
	"github.com/kedai-labs/kopitiam/internal/worker"
	workerorder "github.com/kedai-labs/kopitiam/internal/worker/order"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	cache.Module,
	database.Module,
	logger.Module,
	messaging.Module,
	observability.Module,
	repositorymenu.Module,
	repositoryorder.Module,
	servicemenu.Module,
	serviceorder.Module,
)

// HTTP wires the HTTP transport and the board poller on top of the core
// modules.
var HTTP = fx.Options(
	Core,
	board.Module,
	httpserver.Module,
	transporthttp.Module,
)

// Worker exposes background kitchen ticket processing.
var Worker = fx.Options(
	Core,
	worker.Module,
	workerorder.Module,
)

// Module is the default application wiring (HTTP only).
var Module = HTTP
