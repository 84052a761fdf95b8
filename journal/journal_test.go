package journal_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/samueldeng/clist/journal"
	"github.com/samueldeng/clist/rotation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type buffer struct {
	bytes.Buffer
}

func (b *buffer) Close() error { return nil }

func TestRecordRoundTrip(t *testing.T) {
	rec := journal.OperationRecord{Sequence: 42, WorkerID: 3, Kind: journal.KindAdd, Value: 17}
	var buf bytes.Buffer

	n, err := journal.Write(&buf, rec)
	require.NoError(t, err)
	assert.Equal(t, journal.Size(rec), n)

	got, err := journal.ReadRecord(&buf)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestReadRecordRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("nope-not-a-record-----")
	_, err := journal.ReadRecord(buf)
	assert.ErrorIs(t, err, journal.ErrInvalidMagicBytes)
}

func TestWriterFlushesOnRotateAndClose(t *testing.T) {
	buf := &buffer{}
	w := journal.NewWriter(buf, rotation.NewCountStrategy(2))

	require.NoError(t, w.Write(journal.OperationRecord{Sequence: 1, Kind: journal.KindAdd, Value: 5}))
	require.NoError(t, w.Write(journal.OperationRecord{Sequence: 2, Kind: journal.KindAdd, Value: 6}))
	require.NoError(t, w.Write(journal.OperationRecord{Sequence: 3, Kind: journal.KindPop}))

	require.NoError(t, w.Close())

	var got []journal.OperationRecord
	for rec := range journal.Seq(bytes.NewReader(buf.Bytes())) {
		got = append(got, rec)
	}
	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].Sequence)
	assert.Equal(t, int64(2), got[1].Sequence)
	assert.Equal(t, int64(3), got[2].Sequence)
}

func TestWriterRejectsWriteAfterClose(t *testing.T) {
	buf := &buffer{}
	w := journal.NewWriter(buf, rotation.NewCountStrategy(10))
	require.NoError(t, w.Close())
	assert.Error(t, w.Write(journal.OperationRecord{Sequence: 1}))
	assert.Error(t, w.Close())
}

func TestMergeJournalsInterleavesBySequence(t *testing.T) {
	var a, b bytes.Buffer
	for _, s := range []int64{1, 3, 5} {
		_, err := journal.Write(&a, journal.OperationRecord{Sequence: s, WorkerID: 0, Kind: journal.KindAdd, Value: s})
		require.NoError(t, err)
	}
	for _, s := range []int64{2, 4, 6} {
		_, err := journal.Write(&b, journal.OperationRecord{Sequence: s, WorkerID: 1, Kind: journal.KindAdd, Value: s})
		require.NoError(t, err)
	}

	var got []int64
	for rec := range journal.MergeJournals(io.Reader(&a), io.Reader(&b)) {
		got = append(got, rec.Sequence)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, got)
}

func TestReaderAll(t *testing.T) {
	var buf bytes.Buffer
	for i := int64(0); i < 5; i++ {
		_, err := journal.Write(&buf, journal.OperationRecord{Sequence: i, Kind: journal.KindRemove, Value: i * 10})
		require.NoError(t, err)
	}

	r := journal.NewReader(&buffer{Buffer: buf})
	var count int
	for rec := range r.All() {
		assert.Equal(t, journal.KindRemove, rec.Kind)
		count++
	}
	assert.Equal(t, 5, count)
	require.NoError(t, r.Close())
}
