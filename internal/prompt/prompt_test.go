package prompt

import (
	"strings"
	"testing"
)

func TestBuildNumbersWords(t *testing.T) {
	payload := Build([]string{"摸鱼", "内卷", "窗口"})

	if !strings.HasPrefix(payload, "你是一位中文语言演化与心理语言学专家") {
		t.Error("payload must start with the instruction block")
	}
	for _, line := range []string{"词语 1：摸鱼", "词语 2：内卷", "词语 3：窗口"} {
		if !strings.Contains(payload, line) {
			t.Errorf("payload missing %q", line)
		}
	}
	if strings.Contains(payload, "词语 4") {
		t.Error("payload must number exactly the given words")
	}
}

func TestBuildEmptyBatch(t *testing.T) {
	payload := Build(nil)
	if payload != instructions {
		t.Error("empty batch should produce the bare instruction block")
	}
}

func TestInstructionsKeepOutputContract(t *testing.T) {
	// The parser accepts category A/B/C and boundary 是/否; the instruction
	// text must keep asking for exactly that shape.
	for _, marker := range []string{"分类结果（A / B / C）", "是否为边界词（是 / 否）", "输出示例"} {
		if !strings.Contains(instructions, marker) {
			t.Errorf("instructions missing %q", marker)
		}
	}
}
