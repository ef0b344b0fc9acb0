package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"neoword/internal/record"
)

const goodBlock = "内卷\n原指社会学概念，现新增过度竞争的含义，属语义本质变化。\n竞争,内耗\nB\n7\n否"

func TestParseValidBlock(t *testing.T) {
	recs := Parse(goodBlock, []string{"内卷"})
	require.Len(t, recs, 1)

	r := recs[0]
	require.Equal(t, "内卷", r.Word)
	require.False(t, r.IsError())
	require.Equal(t, "B", r.Class.Category)
	require.Equal(t, 7, r.Class.Confidence)
	require.Equal(t, "否", r.Class.IsBoundary)
	require.Equal(t, "竞争,内耗", r.Class.NearWords)
	require.Equal(t, goodBlock, r.Raw)
}

func TestParseShortBlockIsFormatError(t *testing.T) {
	recs := Parse("内卷\n理由\n竞争,内耗\nB", []string{"内卷"})
	require.Len(t, recs, 1)
	require.True(t, recs[0].IsError())
	require.Contains(t, recs[0].Error, "解析错误")
	require.Contains(t, recs[0].Error, "响应格式不符合预期")
}

func TestParseRejectsBadTokens(t *testing.T) {
	cases := map[string]string{
		"bad category":     "内卷\n理由\n竞争,内耗\nD\n7\n否",
		"verbose category": "内卷\n理由\n竞争,内耗\nB 新词新义\n7\n否",
		"bad confidence":   "内卷\n理由\n竞争,内耗\nB\n高\n否",
		"bad boundary":     "内卷\n理由\n竞争,内耗\nB\n7\n不确定",
	}
	for name, block := range cases {
		recs := Parse(block, []string{"内卷"})
		require.Len(t, recs, 1, name)
		require.True(t, recs[0].IsError(), name)
	}
}

func TestParseMissingWordSynthesized(t *testing.T) {
	reply := goodBlock + "\n\n" + "摸鱼\n原表示捕鱼，现新增偷懒含义。\n偷懒,划水\nA\n9\n否"
	batch := []string{"内卷", "摸鱼", "躺平"}

	recs := Parse(reply, batch)
	require.Len(t, recs, 3)

	require.False(t, recs[0].IsError())
	require.False(t, recs[1].IsError())

	missing := recs[2]
	require.Equal(t, "躺平", missing.Word)
	require.True(t, missing.IsError())
	require.Contains(t, missing.Error, "未在响应中找到对应结果")
	require.NotEmpty(t, missing.Raw)
}

func TestParseMalformedBlockDoesNotPoisonSiblings(t *testing.T) {
	reply := "内卷\n碎片回答" + "\n\n" + "摸鱼\n原表示捕鱼，现新增偷懒含义。\n偷懒,划水\nA\n9\n否"
	recs := Parse(reply, []string{"内卷", "摸鱼"})

	require.Len(t, recs, 2)
	require.True(t, recs[0].IsError())
	require.False(t, recs[1].IsError())
	require.Equal(t, "A", recs[1].Class.Category)
}

func TestParseSurplusBlocksGetPlaceholders(t *testing.T) {
	reply := goodBlock + "\n\n" + goodBlock
	recs := Parse(reply, []string{"内卷"})

	require.Len(t, recs, 2)
	require.Equal(t, "内卷", recs[0].Word)
	require.Equal(t, "UNKNOWN_1", recs[1].Word)
}

func TestParseCoversEveryBatchWord(t *testing.T) {
	batch := []string{"内卷", "摸鱼", "躺平", "破防"}
	recs := Parse("完全无关的输出", batch)

	require.GreaterOrEqual(t, len(recs), len(batch))
	seen := map[string]bool{}
	for _, r := range recs {
		seen[r.Word] = true
	}
	for _, w := range batch {
		require.True(t, seen[w], "word %s must be covered", w)
	}
}

func TestParseSnippetTruncation(t *testing.T) {
	longReply := strings.Repeat("长", 500)
	recs := Parse(longReply, []string{"内卷", "摸鱼"})

	var missing *record.Record
	for i := range recs {
		if strings.Contains(recs[i].Error, "未在响应中找到对应结果") {
			missing = &recs[i]
			break
		}
	}
	require.NotNil(t, missing)
	require.True(t, strings.HasSuffix(missing.Raw, "..."))
	require.LessOrEqual(t, len([]rune(missing.Raw)), snippetLimit+3)
}
