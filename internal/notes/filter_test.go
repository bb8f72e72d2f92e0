package notes

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"notebook/internal/period"
)

func TestFilterCarryOver(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "empty",
			source: "",
			want:   "",
		},
		{
			name:   "header only",
			source: "## Monday 25-06-09\n\n",
			want:   "",
		},
		{
			name:   "header without blank line",
			source: "## Monday 25-06-09\n- [ ] task\n",
			want:   "- [ ] task",
		},
		{
			name:   "only one blank line after header is dropped",
			source: "## June 2025\n\n\n\nbody\n",
			want:   "body",
		},
		{
			name:   "second heading survives",
			source: "## June 2025\n\n## Projects\n- [ ] ship it\n",
			want:   "## Projects\n- [ ] ship it",
		},
		{
			name:   "text before the header is kept",
			source: "intro\n## June 2025\n\nbody\n",
			want:   "intro\nbody",
		},
		{
			name:   "level one and three headings are not headers",
			source: "# Title\n### Sub\n",
			want:   "# Title\n### Sub",
		},
		{
			name:   "completed items dropped in every marker style",
			source: "- [x] a\n+ [X] b\n* [x] c\n[x] d\n\t- [x] e\n- [ ] keep\n",
			want:   "- [ ] keep",
		},
		{
			name:   "completed item without trailing space is kept",
			source: "- [x]\n- [x]done\n",
			want:   "- [x]\n- [x]done",
		},
		{
			name:   "blank lines inside content kept, trailing whitespace trimmed",
			source: "## 2025\n\na\n\n\nb   \n\n\n",
			want:   "a\n\n\nb",
		},
		{
			name:   "leading blank lines left after filtering are trimmed",
			source: "## 2025\n\n- [x] done\n\n  \nkept\n",
			want:   "kept",
		},
		{
			name:   "crlf line endings",
			source: "## 2025\r\n\r\n- [ ] one\r\n- [x] two\r\n",
			want:   "- [ ] one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterCarryOver(tt.source))
		})
	}
}

func TestFilterCarryOver_KeepsEveryOpenTask(t *testing.T) {
	source := "## Monday 25-06-09\n\n- [ ] one\n  * [ ] two\n[ ] three\n- [x] gone\n"
	got := FilterCarryOver(source)

	for _, line := range []string{"- [ ] one", "  * [ ] two", "[ ] three"} {
		assert.Contains(t, strings.Split(got, "\n"), line)
	}
	assert.NotContains(t, got, "gone")
}

func TestCarryOver(t *testing.T) {
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)

	assert.Equal(t, "## June 2025\n\n", CarryOver(period.Monthly, date, "## May 2025\n\n- [x] done\n"))
	assert.Equal(t, "## June 2025\n\n- [ ] open\n", CarryOver(period.Monthly, date, "## May 2025\n\n- [ ] open\n"))
}
