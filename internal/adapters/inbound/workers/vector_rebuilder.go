package workers

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-people-match/internal/usecases"
)

// VectorRebuilder is a runnable that recomputes every person's vector once at
// startup. It backfills vectors after a catalog migration or repairs drift,
// then stays idle until shutdown.
type VectorRebuilder struct {
	Rebuilder usecases.RebuildVectors `resolve:""`
	Logger    *log.Logger             `resolve:""`
	Enabled   bool                    `config:"REBUILD_ON_START" default:"false"`
}

// Run performs the rebuild when enabled and then blocks until the context ends.
func (vr VectorRebuilder) Run(ctx context.Context) error {
	if !vr.Enabled {
		vr.Logger.Println("VectorRebuilder: disabled")
		<-ctx.Done()
		return nil
	}

	vr.Logger.Println("VectorRebuilder: running...")
	count, err := vr.Rebuilder.Execute(ctx)
	if err != nil {
		vr.Logger.Printf("VectorRebuilder: rebuild failed: %v", err)
	} else {
		vr.Logger.Printf("VectorRebuilder: rebuilt vectors for %d persons", count)
	}

	<-ctx.Done()
	vr.Logger.Println("VectorRebuilder: stopping...")
	return nil
}
