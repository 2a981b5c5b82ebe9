package scheduler

import "errors"

// ErrSyncAlreadyRunning indica disparo de ingestão com outra execução em andamento
var ErrSyncAlreadyRunning = errors.New("ingestion sync is already running")
