package plan

import (
	"testing"

	"github.com/grovetools/pmux/pkg/project"
	"github.com/stretchr/testify/assert"
)

func TestFinalLayoutPrecedence(t *testing.T) {
	p := &project.Project{Layout: project.LayoutMainHorizontal}

	t.Run("window layout wins", func(t *testing.T) {
		w := &project.Window{Layout: project.LayoutEvenVertical}
		assert.Equal(t, project.LayoutEvenVertical, finalLayout(p, w))
	})

	t.Run("project layout fills in", func(t *testing.T) {
		assert.Equal(t, project.LayoutMainHorizontal, finalLayout(p, &project.Window{}))
	})

	t.Run("workaround preset when neither is declared", func(t *testing.T) {
		assert.Equal(t, WorkaroundLayout, finalLayout(&project.Project{}, &project.Window{}))
	})
}

func TestSplitLayoutArgsUseWorkaroundPreset(t *testing.T) {
	args := splitLayoutArgs("sess:3")
	assert.Equal(t, []string{"select-layout", "-t", "sess:3", WorkaroundLayout}, args)
}

func TestDescriptorCommandLine(t *testing.T) {
	d := Descriptor{
		Op:   OpSetLayout,
		Args: []string{"select-layout", "-t", "demo:0", "tiled"},
	}
	assert.Equal(t, "tmux select-layout -t demo:0 tiled", d.CommandLine())
}
