package segments

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/powerline/internal/powerline"
	"github.com/alexisbeaulieu97/powerline/internal/shell"
)

// Jobs renders the number of background jobs. Zsh counts them itself at
// prompt expansion time; other shells get the number of processes sharing
// our parent, excluding ourselves.
func Jobs(p *powerline.Powerline, ctx *Context) {
	t := p.Theme
	if p.Shell == shell.Zsh {
		p.Append(powerline.NewSegment(t.JobsBg, t.JobsFg, "%j").
			WithBefore("%(1j.").
			WithAfter(".)").
			AsConditional().
			PreEscaped())
		return
	}

	if ctx.Env.Jobs == nil {
		return
	}
	n, err := ctx.Env.Jobs()
	if err != nil {
		ctx.Log.Skip("jobs", err, "counting jobs failed")
		return
	}
	if n <= 0 {
		return
	}
	p.Append(powerline.NewSegment(t.JobsBg, t.JobsFg, strconv.Itoa(n)))
}

func countJobs() (int, error) {
	out, err := exec.Command("ps", "-e", "-o", "ppid=").Output()
	if err != nil {
		return 0, err
	}
	return siblings(out, os.Getppid()), nil
}

// siblings counts lines of ps output naming ppid as parent. The caller is
// one of them and is not counted.
func siblings(out []byte, ppid int) int {
	n := 0
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		parent, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && parent == ppid {
			n++
		}
	}
	return max(n-1, 0)
}
