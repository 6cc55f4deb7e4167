package queueengine

import (
	"log/slog"
	"time"

	httpadapter "vigil/contexts/moderation-safety/queue-engine/adapters/http"
	"vigil/contexts/moderation-safety/queue-engine/adapters/memory"
	"vigil/contexts/moderation-safety/queue-engine/application/commands"
	"vigil/contexts/moderation-safety/queue-engine/application/queries"
	"vigil/contexts/moderation-safety/queue-engine/ports"
)

// Module is the composition surface for the moderation queue engine.
// Runtime wiring should consume Handler; Store is exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Queue             ports.QueueRepository
	Violations        ports.ViolationRepository
	Notes             ports.NoteRepository
	Idempotency       ports.IdempotencyStore
	ViolationCache    ports.ViolationCountCache
	Clock             ports.Clock
	IDGenerator       ports.IDGenerator
	IdempotencyTTL    time.Duration
	ViolationCacheTTL time.Duration
	NextMaxAttempts   int
	NextRetryDelay    time.Duration
	Logger            *slog.Logger
}

// NewModule wires queue-engine use-cases against explicit ports.
func NewModule(deps Dependencies) Module {
	enqueueItem := commands.EnqueueItemUseCase{
		Queue:             deps.Queue,
		Violations:        deps.Violations,
		ViolationCache:    deps.ViolationCache,
		Idempotency:       deps.Idempotency,
		Clock:             deps.Clock,
		IDGenerator:       deps.IDGenerator,
		IdempotencyTTL:    deps.IdempotencyTTL,
		ViolationCacheTTL: deps.ViolationCacheTTL,
		Logger:            deps.Logger,
	}
	getNextItem := commands.GetNextItemUseCase{
		Queue:       deps.Queue,
		Clock:       deps.Clock,
		MaxAttempts: deps.NextMaxAttempts,
		RetryDelay:  deps.NextRetryDelay,
		Logger:      deps.Logger,
	}
	claimItem := commands.ClaimItemUseCase{
		Queue:  deps.Queue,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	releaseItem := commands.ReleaseItemUseCase{
		Queue:  deps.Queue,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	resolveItem := commands.ResolveItemUseCase{
		Queue:          deps.Queue,
		ViolationCache: deps.ViolationCache,
		Clock:          deps.Clock,
		IDGenerator:    deps.IDGenerator,
		Logger:         deps.Logger,
	}
	escalateItem := commands.EscalateItemUseCase{
		Queue:       deps.Queue,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	addNote := commands.AddNoteUseCase{
		Notes:       deps.Notes,
		Queue:       deps.Queue,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	getItem := queries.GetItemUseCase{
		Queue:  deps.Queue,
		Logger: deps.Logger,
	}
	listQueue := queries.ListQueueUseCase{
		Queue:  deps.Queue,
		Logger: deps.Logger,
	}
	getStats := queries.GetStatsUseCase{
		Queue:  deps.Queue,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	listActions := queries.ListActionsUseCase{
		Queue:  deps.Queue,
		Logger: deps.Logger,
	}
	listViolations := queries.ListViolationsUseCase{
		Violations: deps.Violations,
		Logger:     deps.Logger,
	}
	listNotes := queries.ListNotesUseCase{
		Notes:  deps.Notes,
		Logger: deps.Logger,
	}

	handler := httpadapter.Handler{
		EnqueueItem:    enqueueItem,
		GetNextItem:    getNextItem,
		ClaimItem:      claimItem,
		ReleaseItem:    releaseItem,
		ResolveItem:    resolveItem,
		EscalateItem:   escalateItem,
		AddNote:        addNote,
		GetItem:        getItem,
		ListQueue:      listQueue,
		GetStats:       getStats,
		ListActions:    listActions,
		ListViolations: listViolations,
		ListNotes:      listNotes,
		Logger:         deps.Logger,
	}

	return Module{Handler: handler}
}

// NewInMemoryModule wires queue-engine use cases against in-memory adapters.
// The violation count cache is disabled here; reads hit the ledger directly.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore(logger)
	module := NewModule(Dependencies{
		Queue:             store,
		Violations:        store,
		Notes:             store,
		Idempotency:       store,
		ViolationCache:    nil,
		Clock:             store,
		IDGenerator:       store,
		IdempotencyTTL:    7 * 24 * time.Hour,
		ViolationCacheTTL: 5 * time.Minute,
		NextMaxAttempts:   3,
		NextRetryDelay:    25 * time.Millisecond,
		Logger:            logger,
	})
	module.Store = store
	return module
}
