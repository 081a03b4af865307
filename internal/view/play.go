package view

import (
	"strconv"

	"github.com/Leonard-ssj/portfolio/internal/minigame"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// playSection is the board of the live mini-game. The script in site.js
// connects it to /play/ws and repaints it from the snapshots it receives.
func playSection(p Page) cmp.Node {
	cells := make([]cmp.Node, minigame.Cells)
	for i := range cells {
		cells[i] = g.Button(
			g.Type("button"),
			g.Class("cell"),
			g.Data("cell", strconv.Itoa(i)),
			g.Aria("label", p.L("gameNode")+" "+strconv.Itoa(i+1)),
		)
	}

	return section("play", p.L("gameTitle"),
		g.Div(
			g.ID("game"),
			g.Class("game"),
			g.Data("ws", "/play/ws"),
			g.Data("done", p.L("gameDone")),
			g.Data("new-best", p.L("gameNewBest")),
			g.P(g.Class("subtitle"), cmp.Text(p.L("gameSubtitle"))),
			g.P(g.Class("muted"), cmp.Text(p.L("gameHelp"))),
			g.Div(
				g.Class("difficulty"),
				difficulty(minigame.Relax, p.L("diffRelax")),
				difficulty(minigame.Normal, p.L("diffNormal")),
				difficulty(minigame.Hard, p.L("diffHard")),
			),
			g.Dl(
				g.Class("stats"),
				stat(p.L("gameTime"), "timeLeft"),
				stat(p.L("gameScore"), "score"),
				stat(p.L("gameStreak"), "streak"),
				stat(p.L("gameBest"), "best"),
			),
			g.Div(g.Class("board"), cmp.Group(cells)),
			g.P(g.Class("game-status"), g.Aria("live", "polite")),
			g.Div(
				g.Class("actions"),
				g.Button(g.Type("button"), g.Class("btn"), g.Data("cmd", "start"), cmp.Text(p.L("gamePlay"))),
				g.Button(g.Type("button"), g.Class("btn btn-ghost"), g.Data("cmd", "reset"), cmp.Text(p.L("gameReset"))),
			),
		),
	)
}

func difficulty(d minigame.Difficulty, label string) cmp.Node {
	return g.Button(g.Type("button"), g.Class("chip"), g.Data("difficulty", string(d)), cmp.Text(label))
}

func stat(label, key string) cmp.Node {
	return cmp.Group{g.Dt(cmp.Text(label)), g.Dd(g.Data("stat", key), cmp.Text("0"))}
}
