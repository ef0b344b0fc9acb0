package record

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		Success("摸鱼", Classification{
			Reason:     "原表示捕鱼，新增工作中偷懒的含义。",
			NearWords:  "偷懒,划水",
			Category:   "A",
			Confidence: 9,
			IsBoundary: "否",
		}, "摸鱼\n原表示捕鱼，新增工作中偷懒的含义。\n偷懒,划水\nA\n9\n否"),
		Failure("窗口", "解析错误: 响应行数不足", "窗口\n含义未变"),
	}
}

func TestWriteAndReadResults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "results"), filepath.Join(t.TempDir(), "errors"))
	require.NoError(t, store.EnsureDirs())

	path, err := store.WriteResults(3, sampleRecords())
	require.NoError(t, err)
	require.Equal(t, store.ResultPath(3), path)

	recs, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	require.Equal(t, "摸鱼", recs[0].Word)
	require.False(t, recs[0].IsError())
	require.NotNil(t, recs[0].Class)
	require.Equal(t, "A", recs[0].Class.Category)
	require.Equal(t, 9, recs[0].Class.Confidence)
	require.Equal(t, "否", recs[0].Class.IsBoundary)

	require.Equal(t, "窗口", recs[1].Word)
	require.True(t, recs[1].IsError())
	require.Nil(t, recs[1].Class)
}

func TestWriteCSVStartsWithBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(path, sampleRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "\ufeff"), "CSV artifacts carry a UTF-8 BOM")
}

func TestWriteErrors(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "results"), filepath.Join(t.TempDir(), "errors"))
	require.NoError(t, store.EnsureDirs())

	path, err := store.WriteErrors(5, Errors(sampleRecords()))
	require.NoError(t, err)
	require.Equal(t, store.ErrorPath(5), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]string
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 1)
	require.Equal(t, "窗口", entries[0]["word"])
	require.Contains(t, entries[0]["error"], "解析错误")
}

func TestReadAllConcatenatesBatches(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "results"), filepath.Join(t.TempDir(), "errors"))
	require.NoError(t, store.EnsureDirs())

	_, err := store.WriteResults(1, sampleRecords())
	require.NoError(t, err)
	_, err = store.WriteResults(2, sampleRecords()[:1])
	require.NoError(t, err)

	all, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, all, 3)

	success, errs := Count(all)
	require.Equal(t, 2, success)
	require.Equal(t, 1, errs)
}

func TestCountAndErrors(t *testing.T) {
	recs := sampleRecords()
	success, errs := Count(recs)
	require.Equal(t, 1, success)
	require.Equal(t, 1, errs)
	require.Len(t, Errors(recs), 1)
}
