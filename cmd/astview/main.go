package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"minipython/pkg/interp"
)

// Pixel geometry of the tree. Face7x13 glyphs are 7px wide and 13px tall;
// the gaps leave room for the widest labels.
const (
	xGap      = 64
	yGap      = 48
	marginX   = 40
	marginY   = 40
	charWidth = 7
	panSpeed  = 6
)

var edgeColor = color.RGBA{0x88, 0x88, 0x88, 0xff}

// layoutNode mirrors one AST node with its grid position: x in leaf slots,
// y in depth rows.
type layoutNode struct {
	label    string
	x, y     float32
	children []*layoutNode
}

// layoutTree positions the tree in one walk: leaves take consecutive x
// slots, interior nodes sit centered over their children, depth sets the
// row. One walk because Children() builds child lists fresh on every call.
func layoutTree(n interp.Node) *layoutNode {
	nextSlot := 0
	var walk func(n interp.Node, depth int) *layoutNode
	walk = func(n interp.Node, depth int) *layoutNode {
		ln := &layoutNode{label: n.Label(), y: float32(depth)}
		for _, c := range n.Children() {
			ln.children = append(ln.children, walk(c, depth+1))
		}
		if len(ln.children) == 0 {
			ln.x = float32(nextSlot)
			nextSlot++
		} else {
			ln.x = (ln.children[0].x + ln.children[len(ln.children)-1].x) / 2
		}
		return ln
	}
	return walk(n, 0)
}

type Game struct {
	root       *layoutNode
	camX, camY float32
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camX -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camX += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camY -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camY += panSpeed
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawEdges(screen, g.root)
	g.drawLabels(screen, g.root)
}

func (g *Game) pixelX(n *layoutNode) float32 { return marginX + n.x*xGap - g.camX }
func (g *Game) pixelY(n *layoutNode) float32 { return marginY + n.y*yGap - g.camY }

func (g *Game) drawEdges(screen *ebiten.Image, n *layoutNode) {
	for _, c := range n.children {
		vector.StrokeLine(screen,
			g.pixelX(n), g.pixelY(n)+4,
			g.pixelX(c), g.pixelY(c)-13,
			1, edgeColor, true)
		g.drawEdges(screen, c)
	}
}

func (g *Game) drawLabels(screen *ebiten.Image, n *layoutNode) {
	x := int(g.pixelX(n)) - len(n.label)*charWidth/2
	y := int(g.pixelY(n))
	text.Draw(screen, n.label, basicfont.Face7x13, x, y, color.White)
	for _, c := range n.children {
		g.drawLabels(screen, c)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: astview <file>")
		os.Exit(2)
	}
	sourceBytes, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read source file: %v", err)
	}
	prog, _, err := interp.Compile(string(sourceBytes))
	if err != nil {
		log.Fatalf("Compilation failed: %v", err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1024, 640)
	ebiten.SetWindowTitle("MiniPython AST")

	if err := ebiten.RunGame(&Game{root: layoutTree(prog)}); err != nil {
		log.Fatal(err)
	}
}
