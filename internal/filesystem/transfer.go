package filesystem

import (
	"sync"
	"time"
)

// TransferInfo tracks the progress of a copy or move of a tree. It is safe
// for concurrent use, so that it can be observed while the transfer runs.
type TransferInfo struct {
	sync.RWMutex

	err              error
	started          bool
	finished         bool
	startTime        time.Time
	endTime          time.Time
	currentPath      string
	itemsTotal       uint64
	itemsDone        uint64
	bytesTotal       uint64
	bytesTransferred uint64
	transferRate     float64
	timeRemaining    time.Duration
}

// TransferStats is a point-in-time copy of a [TransferInfo].
type TransferStats struct {
	Err              error
	Started          bool
	Finished         bool
	Elapsed          time.Duration
	CurrentPath      string
	ItemsTotal       uint64
	ItemsDone        uint64
	BytesTotal       uint64
	BytesTransferred uint64
	Percentage       float64
	TransferRate     float64
	TimeRemaining    time.Duration
}

// Start marks the beginning of a transfer of the given volume.
func (t *TransferInfo) Start(bytesTotal uint64, itemsTotal uint64) {
	t.Lock()
	defer t.Unlock()

	t.started = true
	t.finished = false
	t.err = nil
	t.startTime = time.Now()
	t.bytesTotal = bytesTotal
	t.itemsTotal = itemsTotal
	t.bytesTransferred = 0
	t.itemsDone = 0
	t.transferRate = 0
	t.timeRemaining = 0
}

// Add accounts for n more transferred bytes.
func (t *TransferInfo) Add(n uint64) {
	t.Lock()
	defer t.Unlock()

	t.bytesTransferred += n

	elapsed := time.Since(t.startTime)
	if elapsed < time.Second {
		return
	}

	instantRate := float64(t.bytesTransferred) / elapsed.Seconds()

	if t.transferRate == 0 {
		t.transferRate = instantRate
	} else {
		t.transferRate = 0.7*t.transferRate + 0.3*instantRate //nolint:mnd
	}

	if t.transferRate > 0 && t.bytesTransferred < t.bytesTotal {
		secondsRemaining := float64(t.bytesTotal-t.bytesTransferred) / t.transferRate
		t.timeRemaining = time.Duration(secondsRemaining) * time.Second
	}
}

// ItemDone accounts for one more completely transferred node.
func (t *TransferInfo) ItemDone(path string) {
	t.Lock()
	defer t.Unlock()

	t.itemsDone++
	t.currentPath = path
}

// End marks the transfer as finished, successfully if err is nil.
func (t *TransferInfo) End(err error) {
	t.Lock()
	defer t.Unlock()

	t.finished = true
	t.err = err
	t.endTime = time.Now()
	t.timeRemaining = 0

	if err == nil {
		t.bytesTransferred = t.bytesTotal
		t.itemsDone = t.itemsTotal
	}
}

// Stats returns a snapshot of the transfer.
func (t *TransferInfo) Stats() TransferStats {
	t.RLock()
	defer t.RUnlock()

	s := TransferStats{
		Err:              t.err,
		Started:          t.started,
		Finished:         t.finished,
		CurrentPath:      t.currentPath,
		ItemsTotal:       t.itemsTotal,
		ItemsDone:        t.itemsDone,
		BytesTotal:       t.bytesTotal,
		BytesTransferred: t.bytesTransferred,
		TransferRate:     t.transferRate,
		TimeRemaining:    t.timeRemaining,
	}

	switch {
	case t.finished:
		s.Elapsed = t.endTime.Sub(t.startTime)
	case t.started:
		s.Elapsed = time.Since(t.startTime)
	}

	switch {
	case t.finished && t.err == nil:
		s.Percentage = 100 //nolint:mnd
	case t.bytesTotal > 0:
		s.Percentage = float64(t.bytesTransferred) / float64(t.bytesTotal) * 100 //nolint:mnd
	case t.itemsTotal > 0:
		s.Percentage = float64(t.itemsDone) / float64(t.itemsTotal) * 100 //nolint:mnd
	}

	return s
}

type progressWriter struct {
	progress *TransferInfo
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.progress.Add(uint64(len(p)))

	return len(p), nil
}
