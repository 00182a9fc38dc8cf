package chartkit

import (
	"image/color"
	"math"
	"strconv"
	"strings"
	"time"
)

// AxisSide identifies which edge of the axis rect an axis occupies. It also
// fixes the axis orientation: bottom/top axes are horizontal, left/right
// axes vertical.
type AxisSide int

const (
	AxisBottom AxisSide = iota
	AxisLeft
	AxisTop
	AxisRight
)

// ScaleType selects between linear and logarithmic coordinate mapping.
type ScaleType int

const (
	ScaleLinear ScaleType = iota
	ScaleLogarithmic
)

// TickMode selects how tick positions are produced.
type TickMode int

const (
	// TicksAuto derives both the step and the positions from the range.
	TicksAuto TickMode = iota
	// TicksFixedStep places ticks at multiples of a caller-provided step.
	TicksFixedStep
	// TicksManual uses a caller-provided position/label vector pair.
	TicksManual
)

// TickLabelType selects how tick coordinates become label text.
type TickLabelType int

const (
	// TickLabelNumber formats the coordinate as a number.
	TickLabelNumber TickLabelType = iota
	// TickLabelDateTime treats the coordinate as seconds since the Unix
	// epoch and formats it with a Go time layout.
	TickLabelDateTime
)

// AxisPart is a bit set of the independently selectable regions of an axis.
type AxisPart int

const (
	AxisPartNone      AxisPart = 0
	AxisPartBackbone  AxisPart = 1 << iota // baseline and tick marks
	AxisPartTickLabels
	AxisPartLabel
)

// RangeAlign controls how SetRangeSpan interprets its position argument.
type RangeAlign int

const (
	AlignCenter RangeAlign = iota
	AlignLeft
	AlignRight
)

// Axis maintains the mapping between one data dimension and one pixel
// segment, and produces the ticks and labels drawn along it.
type Axis struct {
	plot *Plot
	side AxisSide

	rng      Range
	reversed bool
	scale    ScaleType
	logBase  float64

	axisRect Rect
	visible  bool
	grid     *Grid

	tickMode     TickMode
	tickCount    int
	tickStep     float64
	subTickCount int
	autoSubTicks bool
	manualTicks  []float64
	manualLabels []string

	labelType       TickLabelType
	dateTimeFormat  string
	numberFormat    byte
	beautifulPowers bool
	precision       int

	ticks       []float64
	tickLabels  []string
	subTicks    []float64
	lowestTick  int
	highestTick int

	showTicks      bool
	showTickLabels bool

	basePen, tickPen, subTickPen                                 Pen
	tickLengthIn, tickLengthOut, subTickLengthIn, subTickLengthOut float64
	tickLabelFont                                                Font
	tickLabelColor                                               color.NRGBA
	tickLabelPadding                                             float64
	tickLabelRotated                                             bool
	label                                                        string
	labelFont                                                    Font
	labelColor                                                   color.NRGBA
	labelPadding                                                 float64
	padding                                                      float64

	cache *labelCache

	rangeChanged []func(Range)
	notifying    bool

	selectableParts AxisPart
	selectedParts   AxisPart

	drawn                             bool
	backboneBox, tickLabelsBox, labelBox Rect
}

// niceTickStepEpsilon prevents jitter when the range size divides the target
// tick count exactly; do not retune it, downstream tick placement depends on
// the literal value.
const niceTickStepEpsilon = 1e-10

const defaultLabelCacheCapacity = 48

func newAxis(plot *Plot, side AxisSide) *Axis {
	black := color.NRGBA{A: 255}
	gray := color.NRGBA{R: 130, G: 130, B: 130, A: 255}
	a := &Axis{
		plot:             plot,
		side:             side,
		rng:              Range{Lower: 0, Upper: 5},
		scale:            ScaleLinear,
		logBase:          10,
		visible:          true,
		tickCount:        6,
		subTickCount:     4,
		autoSubTicks:     true,
		numberFormat:     'g',
		precision:        6,
		dateTimeFormat:   "2006-01-02\n15:04:05",
		showTicks:        true,
		showTickLabels:   true,
		basePen:          SolidPen(black, 1),
		tickPen:          SolidPen(black, 1),
		subTickPen:       SolidPen(black, 1),
		tickLengthIn:     5,
		tickLengthOut:    0,
		subTickLengthIn:  2,
		subTickLengthOut: 0,
		tickLabelFont:    Font{Size: 12},
		tickLabelColor:   black,
		tickLabelPadding: 6,
		labelFont:        Font{Size: 13},
		labelColor:       black,
		labelPadding:     8,
		padding:          5,
		cache:            newLabelCache(defaultLabelCacheCapacity),
		selectableParts:  AxisPartBackbone | AxisPartTickLabels | AxisPartLabel,
	}
	a.grid = newGrid(a, gray)
	return a
}

func (a *Axis) Side() AxisSide { return a.side }

func (a *Axis) horizontal() bool {
	return a.side == AxisBottom || a.side == AxisTop
}

// Grid returns the grid layerable belonging to this axis.
func (a *Axis) Grid() *Grid { return a.grid }

func (a *Axis) Visible() bool       { return a.visible }
func (a *Axis) SetVisible(v bool)   { a.visible = v }
func (a *Axis) Range() Range        { return a.rng }
func (a *Axis) RangeReversed() bool { return a.reversed }

func (a *Axis) SetRangeReversed(reversed bool) {
	a.reversed = reversed
}

func (a *Axis) ScaleType() ScaleType { return a.scale }

func (a *Axis) SetScaleType(scale ScaleType) {
	a.scale = scale
	if scale == ScaleLogarithmic && a.rng != a.rng.SanitizedForLogScale() {
		a.applyRange(a.rng)
	}
}

func (a *Axis) ScaleLogBase() float64 { return a.logBase }

// SetScaleLogBase sets the logarithm base used on logarithmic scales. Bases
// not greater than 1 are ignored.
func (a *Axis) SetScaleLogBase(base float64) {
	if base > 1 {
		a.logBase = base
	}
}

func (a *Axis) baseLog(v float64) float64 {
	return math.Log(v) / math.Log(a.logBase)
}

func (a *Axis) basePow(v float64) float64 {
	return math.Pow(a.logBase, v)
}

// SetRange replaces the axis range. Invalid bounds are ignored; the accepted
// range is sanitized for the current scale type before observers run.
func (a *Axis) SetRange(lower, upper float64) {
	if !ValidRange(lower, upper) {
		return
	}
	a.applyRange(Range{Lower: lower, Upper: upper})
}

// SetRangeTo is SetRange taking the bounds as a Range, convenient for
// observer callbacks that mirror another axis.
func (a *Axis) SetRangeTo(r Range) {
	a.SetRange(r.Lower, r.Upper)
}

// SetRangeSpan positions a range of the given size relative to position:
// AlignLeft makes position the lower bound, AlignRight the upper bound, and
// AlignCenter centers the range on it.
func (a *Axis) SetRangeSpan(position, size float64, align RangeAlign) {
	switch align {
	case AlignLeft:
		a.SetRange(position, position+size)
	case AlignRight:
		a.SetRange(position-size, position)
	default:
		a.SetRange(position-size/2, position+size/2)
	}
}

func (a *Axis) SetRangeLower(lower float64) {
	a.applyRange(Range{Lower: lower, Upper: a.rng.Upper})
}

func (a *Axis) SetRangeUpper(upper float64) {
	a.applyRange(Range{Lower: a.rng.Lower, Upper: upper})
}

func (a *Axis) applyRange(r Range) {
	if a.scale == ScaleLogarithmic {
		a.rng = r.SanitizedForLogScale()
	} else {
		a.rng = r.SanitizedForLinScale()
	}
	a.notifyRangeChanged()
}

// ScaleRange zooms the range by factor around center. On logarithmic scales
// center must lie in the range's sign domain; other centers are ignored.
func (a *Axis) ScaleRange(factor, center float64) {
	if a.scale == ScaleLinear {
		r := Range{
			Lower: (a.rng.Lower-center)*factor + center,
			Upper: (a.rng.Upper-center)*factor + center,
		}
		if ValidRange(r.Lower, r.Upper) {
			a.rng = r.SanitizedForLinScale()
		}
	} else {
		if (a.rng.Upper < 0 && center < 0) || (a.rng.Upper > 0 && center > 0) {
			r := Range{
				Lower: math.Pow(a.rng.Lower/center, factor) * center,
				Upper: math.Pow(a.rng.Upper/center, factor) * center,
			}
			if ValidRange(r.Lower, r.Upper) {
				a.rng = r.SanitizedForLogScale()
			}
		}
	}
	a.notifyRangeChanged()
}

// MoveRange shifts the range by diff: additively on linear scales,
// multiplicatively on logarithmic scales.
func (a *Axis) MoveRange(diff float64) {
	if a.scale == ScaleLinear {
		a.rng.Lower += diff
		a.rng.Upper += diff
	} else {
		if diff > 0 {
			a.rng.Lower *= diff
			a.rng.Upper *= diff
		}
	}
	a.notifyRangeChanged()
}

// OnRangeChanged registers fn to run synchronously whenever the range is
// replaced. Handlers run in registration order and receive a copy of the new
// range. Notification is suppressed while a notification on this axis is
// already in flight, so mutually linked axes cannot recurse unboundedly.
func (a *Axis) OnRangeChanged(fn func(Range)) {
	a.rangeChanged = append(a.rangeChanged, fn)
}

// LinkTo makes this axis copy other's range whenever other changes. Linking
// two axes to each other keeps them synchronized in both directions.
func (a *Axis) LinkTo(other *Axis) {
	other.OnRangeChanged(a.SetRangeTo)
}

func (a *Axis) notifyRangeChanged() {
	if a.notifying {
		return
	}
	a.notifying = true
	defer func() { a.notifying = false }()
	for _, fn := range a.rangeChanged {
		fn(a.rng)
	}
}

func (a *Axis) setAxisRect(r Rect) {
	a.axisRect = r
}

// CoordToPixel transforms a coordinate on this axis to a pixel position. On
// logarithmic scales, values outside the range's sign domain have no
// representation; they map to a point 200 px outside the axis rect so a
// caller that draws them anyway produces clipped, not corrupted, output.
func (a *Axis) CoordToPixel(value float64) float64 {
	if a.horizontal() {
		left, width := a.axisRect.Min.X, a.axisRect.Width()
		if a.scale == ScaleLinear {
			if !a.reversed {
				return (value-a.rng.Lower)/a.rng.Size()*width + left
			}
			return (a.rng.Upper-value)/a.rng.Size()*width + left
		}
		switch {
		case value >= 0 && a.rng.Upper < 0:
			if !a.reversed {
				return a.axisRect.Max.X + 200
			}
			return left - 200
		case value <= 0 && a.rng.Upper > 0:
			if !a.reversed {
				return left - 200
			}
			return a.axisRect.Max.X + 200
		}
		if !a.reversed {
			return a.baseLog(value/a.rng.Lower)/a.baseLog(a.rng.Upper/a.rng.Lower)*width + left
		}
		return a.baseLog(a.rng.Upper/value)/a.baseLog(a.rng.Upper/a.rng.Lower)*width + left
	}
	bottom, height := a.axisRect.Max.Y, a.axisRect.Height()
	if a.scale == ScaleLinear {
		if !a.reversed {
			return bottom - (value-a.rng.Lower)/a.rng.Size()*height
		}
		return bottom - (a.rng.Upper-value)/a.rng.Size()*height
	}
	switch {
	case value >= 0 && a.rng.Upper < 0:
		if !a.reversed {
			return a.axisRect.Min.Y - 200
		}
		return bottom + 200
	case value <= 0 && a.rng.Upper > 0:
		if !a.reversed {
			return bottom + 200
		}
		return a.axisRect.Min.Y - 200
	}
	if !a.reversed {
		return bottom - a.baseLog(value/a.rng.Lower)/a.baseLog(a.rng.Upper/a.rng.Lower)*height
	}
	return bottom - a.baseLog(a.rng.Upper/value)/a.baseLog(a.rng.Upper/a.rng.Lower)*height
}

// PixelToCoord is the inverse of CoordToPixel.
func (a *Axis) PixelToCoord(pixel float64) float64 {
	if a.horizontal() {
		left, width := a.axisRect.Min.X, a.axisRect.Width()
		if a.scale == ScaleLinear {
			if !a.reversed {
				return (pixel-left)/width*a.rng.Size() + a.rng.Lower
			}
			return -(pixel-left)/width*a.rng.Size() + a.rng.Upper
		}
		if !a.reversed {
			return math.Pow(a.rng.Upper/a.rng.Lower, (pixel-left)/width) * a.rng.Lower
		}
		return math.Pow(a.rng.Upper/a.rng.Lower, (left-pixel)/width) * a.rng.Upper
	}
	bottom, height := a.axisRect.Max.Y, a.axisRect.Height()
	if a.scale == ScaleLinear {
		if !a.reversed {
			return (bottom-pixel)/height*a.rng.Size() + a.rng.Lower
		}
		return -(bottom-pixel)/height*a.rng.Size() + a.rng.Upper
	}
	if !a.reversed {
		return math.Pow(a.rng.Upper/a.rng.Lower, (bottom-pixel)/height) * a.rng.Lower
	}
	return math.Pow(a.rng.Upper/a.rng.Lower, (pixel-bottom)/height) * a.rng.Upper
}

// Tick configuration.

func (a *Axis) TickMode() TickMode { return a.tickMode }

func (a *Axis) SetTickMode(mode TickMode) { a.tickMode = mode }

// SetTickCount sets the approximate number of major ticks the automatic
// generator aims for.
func (a *Axis) SetTickCount(count int) {
	if count > 0 {
		a.tickCount = count
	}
}

// SetTickStep fixes the major tick step and switches to TicksFixedStep mode.
func (a *Axis) SetTickStep(step float64) {
	if step > 0 {
		a.tickStep = step
		a.tickMode = TicksFixedStep
	}
}

// TickStep returns the step used by the last tick generation pass.
func (a *Axis) TickStep() float64 { return a.tickStep }

// SetManualTicks switches to TicksManual mode with explicit positions and
// parallel labels. Positions beyond the end of labels get an auto-formatted
// fallback label. Positions must be in ascending order.
func (a *Axis) SetManualTicks(positions []float64, labels []string) {
	a.manualTicks = append(a.manualTicks[:0], positions...)
	a.manualLabels = append(a.manualLabels[:0], labels...)
	a.tickMode = TicksManual
}

func (a *Axis) SetSubTickCount(count int) {
	if count >= 0 {
		a.subTickCount = count
		a.autoSubTicks = false
	}
}

func (a *Axis) SetAutoSubTicks(on bool) { a.autoSubTicks = on }

func (a *Axis) SetTicksVisible(on bool)      { a.showTicks = on }
func (a *Axis) SetTickLabelsVisible(on bool) { a.showTickLabels = on }

// Ticks returns the positions generated by the last replot.
func (a *Axis) Ticks() []float64 { return a.ticks }

// TickLabels returns the label strings parallel to Ticks.
func (a *Axis) TickLabels() []string { return a.tickLabels }

// SubTicks returns the sub-tick positions generated by the last replot.
func (a *Axis) SubTicks() []float64 { return a.subTicks }

// Label formatting configuration.

func (a *Axis) SetTickLabelType(t TickLabelType) { a.labelType = t }

// SetDateTimeFormat sets the Go time layout used for TickLabelDateTime axes.
func (a *Axis) SetDateTimeFormat(layout string) { a.dateTimeFormat = layout }

// SetNumberFormat configures numeric tick formatting. The first character
// selects the notation ('f' fixed, 'e' scientific, 'g' shortest); a
// following 'b' renders exponents as superscript powers of ten. Unknown
// formats are ignored.
func (a *Axis) SetNumberFormat(format string) {
	if format == "" {
		return
	}
	switch format[0] {
	case 'f', 'e', 'g':
		a.numberFormat = format[0]
	default:
		return
	}
	a.beautifulPowers = strings.ContainsRune(format[1:], 'b') && a.numberFormat != 'f'
	a.invalidateLabelCache()
}

func (a *Axis) SetNumberPrecision(precision int) {
	if precision >= 0 {
		a.precision = precision
		a.invalidateLabelCache()
	}
}

// Style setters that affect rendered label artifacts invalidate the cache.

func (a *Axis) SetTickLabelFont(f Font) {
	a.tickLabelFont = f
	a.invalidateLabelCache()
}

func (a *Axis) SetTickLabelColor(c color.NRGBA) {
	a.tickLabelColor = c
	a.invalidateLabelCache()
}

// SetTickLabelsRotated rotates tick labels 90 degrees counter-clockwise.
func (a *Axis) SetTickLabelsRotated(rotated bool) {
	a.tickLabelRotated = rotated
	a.invalidateLabelCache()
}

func (a *Axis) SetLabel(text string) { a.label = text }
func (a *Axis) LabelText() string    { return a.label }

func (a *Axis) SetLabelFont(f Font)         { a.labelFont = f }
func (a *Axis) SetLabelColor(c color.NRGBA) { a.labelColor = c }

func (a *Axis) SetBasePen(p Pen)    { a.basePen = p }
func (a *Axis) SetTickPen(p Pen)    { a.tickPen = p }
func (a *Axis) SetSubTickPen(p Pen) { a.subTickPen = p }

func (a *Axis) invalidateLabelCache() {
	a.cache.clear()
}

// setupTickVectors regenerates ticks, sub-ticks and labels for the current
// range. The plot calls this once per replot cycle, after margins are final.
func (a *Axis) setupTickVectors() {
	switch a.tickMode {
	case TicksManual:
		a.ticks = append(a.ticks[:0], a.manualTicks...)
	default:
		a.generateAutoTicks()
	}
	a.generateSubTicks()
	a.generateTickLabels()
	a.computeVisibleTickBounds()
}

func (a *Axis) generateAutoTicks() {
	if a.scale == ScaleLinear {
		if a.tickMode == TicksAuto {
			a.tickStep = niceTickStep(a.rng.Size(), a.tickCount)
		}
		if a.autoSubTicks {
			a.subTickCount = autoSubTickCount(a.tickStep, a.subTickCount)
		}
		firstStep := math.Floor(a.rng.Lower / a.tickStep)
		lastStep := math.Ceil(a.rng.Upper / a.tickStep)
		count := int(lastStep-firstStep) + 1
		if count < 0 {
			count = 0
		}
		a.ticks = a.ticks[:0]
		for i := 0; i < count; i++ {
			a.ticks = append(a.ticks, (firstStep+float64(i))*a.tickStep)
		}
		return
	}
	// Logarithmic: one tick per power of the base within the range's sign
	// domain. Mixed-sign ranges cannot occur after sanitization but are
	// answered with no ticks rather than a panic.
	a.ticks = a.ticks[:0]
	switch {
	case a.rng.Lower > 0 && a.rng.Upper > 0:
		current := a.basePow(math.Floor(a.baseLog(a.rng.Lower)))
		a.ticks = append(a.ticks, current)
		for current < a.rng.Upper && current > 0 {
			current *= a.logBase
			a.ticks = append(a.ticks, current)
		}
	case a.rng.Lower < 0 && a.rng.Upper < 0:
		current := -a.basePow(math.Ceil(a.baseLog(-a.rng.Lower)))
		a.ticks = append(a.ticks, current)
		for current < a.rng.Upper && current < 0 {
			current /= a.logBase
			a.ticks = append(a.ticks, current)
		}
	}
}

// niceTickStep picks a human-friendly step close to size/target: the raw
// step's mantissa is rounded to the nearest 0.5 below 5, and to the nearest
// 2 at or above 5, yielding steps from the {1, 2, 5} x 10^k family.
func niceTickStep(size float64, target int) float64 {
	raw := size / (float64(target) + niceTickStepEpsilon)
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	mantissa := raw / magnitude
	if mantissa < 5 {
		return math.Round(mantissa*2) / 2 * magnitude
	}
	return math.Round(mantissa/10*5) / 5 * 10 * magnitude
}

// autoSubTickCount maps a tick step to a sub-tick count whose sub-step is
// intuitive (0.2 for step 1, 0.5 for step 2, ...). Steps with mantissas that
// are neither near-integer nor near-half keep the fallback count.
func autoSubTickCount(tickStep float64, fallback int) int {
	magnitude := math.Pow(10, math.Floor(math.Log10(tickStep)))
	mantissa := tickStep / magnitude

	const epsilon = 0.01
	intPart, fracPart := math.Modf(mantissa)
	switch {
	case fracPart < epsilon || 1-fracPart < epsilon:
		if 1-fracPart < epsilon {
			intPart++
		}
		switch int(intPart) {
		case 1:
			return 4
		case 2:
			return 3
		case 3:
			return 2
		case 4:
			return 3
		case 5:
			return 4
		case 6:
			return 2
		case 7:
			return 6
		case 8:
			return 3
		case 9:
			return 2
		}
	case math.Abs(fracPart-0.5) < epsilon:
		switch int(intPart) {
		case 1, 7:
			return 2
		case 4:
			return 2
		case 2, 3, 5, 6, 8, 9:
			return 4
		}
	}
	return fallback
}

func (a *Axis) generateSubTicks() {
	a.subTicks = a.subTicks[:0]
	if a.subTickCount <= 0 || len(a.ticks) < 2 {
		return
	}
	for i := 1; i < len(a.ticks); i++ {
		subStep := (a.ticks[i] - a.ticks[i-1]) / float64(a.subTickCount+1)
		for j := 1; j <= a.subTickCount; j++ {
			pos := a.ticks[i-1] + float64(j)*subStep
			if a.rng.Contains(pos) {
				a.subTicks = append(a.subTicks, pos)
			}
		}
	}
}

func (a *Axis) generateTickLabels() {
	a.tickLabels = a.tickLabels[:0]
	for i, tick := range a.ticks {
		if a.tickMode == TicksManual && i < len(a.manualLabels) {
			a.tickLabels = append(a.tickLabels, a.manualLabels[i])
			continue
		}
		a.tickLabels = append(a.tickLabels, a.formatTickValue(tick))
	}
}

func (a *Axis) computeVisibleTickBounds() {
	a.lowestTick, a.highestTick = len(a.ticks), -1
	for i, tick := range a.ticks {
		if tick >= a.rng.Lower {
			a.lowestTick = i
			break
		}
	}
	for i := len(a.ticks) - 1; i >= 0; i-- {
		if a.ticks[i] <= a.rng.Upper {
			a.highestTick = i
			break
		}
	}
}

func (a *Axis) formatTickValue(v float64) string {
	if a.labelType == TickLabelDateTime {
		sec := math.Floor(v)
		nsec := int64((v - sec) * 1e9)
		return time.Unix(int64(sec), nsec).UTC().Format(a.dateTimeFormat)
	}
	if a.beautifulPowers {
		return beautifulPowerLabel(v, a.precision)
	}
	return strconv.FormatFloat(v, a.numberFormat, a.precision, 64)
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'-': '⁻', '+': '⁺',
}

// beautifulPowerLabel renders v in scientific notation with the exponent as
// superscript text, e.g. 0.002 becomes "2×10⁻³".
func beautifulPowerLabel(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'e', precision, 64)
	mantissa, exponent, found := strings.Cut(s, "e")
	if !found {
		return s
	}
	mantissa = strings.TrimRight(strings.TrimRight(mantissa, "0"), ".")
	expVal, err := strconv.Atoi(exponent)
	if err != nil {
		return s
	}
	if expVal == 0 {
		return mantissa
	}
	var sup strings.Builder
	for _, r := range strconv.Itoa(expVal) {
		if sr, ok := superscripts[r]; ok {
			sup.WriteRune(sr)
		} else {
			sup.WriteRune(r)
		}
	}
	if mantissa == "1" {
		return "10" + sup.String()
	}
	return mantissa + "×10" + sup.String()
}

// tickLabelArtifact returns the rendered label for text, consulting the
// bounded cache first.
func (a *Axis) tickLabelArtifact(p Painter, text string) Label {
	key := labelKey{font: a.tickLabelFont, text: text}
	if label, ok := a.cache.get(key); ok {
		return label
	}
	label := p.Label(a.tickLabelFont, text, a.tickLabelColor)
	a.cache.put(key, label)
	return label
}

// calculateMargin reports the axis's required thickness in pixels: outward
// tick length, tick label extent, axis label extent and padding.
func (a *Axis) calculateMargin(p Painter) float64 {
	margin := a.padding + math.Max(a.tickLengthOut, a.subTickLengthOut)
	if a.showTickLabels {
		maxExtent := 0.0
		lo, hi := a.lowestTick, a.highestTick
		for i := lo; i <= hi && i < len(a.tickLabels); i++ {
			if i < 0 {
				continue
			}
			size := a.tickLabelArtifact(p, a.tickLabels[i]).Size()
			extent := size.Y
			if !a.horizontal() != a.tickLabelRotated {
				extent = size.X
			}
			if extent > maxExtent {
				maxExtent = extent
			}
		}
		if maxExtent > 0 {
			margin += maxExtent + a.tickLabelPadding
		}
	}
	if a.label != "" {
		margin += p.Label(a.labelFont, a.label, a.labelColor).Size().Y + a.labelPadding
	}
	return margin
}

// Draw renders the axis baseline, ticks, sub-ticks, tick labels and label,
// and records the selection boxes used by SelectTest.
func (a *Axis) Draw(p Painter) {
	if a.axisRect.Empty() || a.rng.Size() <= 0 {
		return
	}
	var origin Point
	switch a.side {
	case AxisBottom:
		origin = Pt(a.axisRect.Min.X, a.axisRect.Max.Y)
	case AxisTop:
		origin = a.axisRect.Min
	case AxisLeft:
		origin = Pt(a.axisRect.Min.X, a.axisRect.Max.Y)
	case AxisRight:
		origin = a.axisRect.Max
	}
	// outward is +1 when "away from the plot" increases the pixel coordinate.
	outward := 1.0
	if a.side == AxisTop || a.side == AxisLeft {
		outward = -1
	}

	p.PushAntialiasing(false)
	// baseline
	if a.horizontal() {
		p.Line(origin, Pt(a.axisRect.Max.X, origin.Y), a.basePen)
		a.backboneBox = Rect{
			Min: Pt(a.axisRect.Min.X, origin.Y-4),
			Max: Pt(a.axisRect.Max.X, origin.Y+4),
		}
	} else {
		p.Line(Pt(origin.X, a.axisRect.Min.Y), Pt(origin.X, a.axisRect.Max.Y), a.basePen)
		a.backboneBox = Rect{
			Min: Pt(origin.X-4, a.axisRect.Min.Y),
			Max: Pt(origin.X+4, a.axisRect.Max.Y),
		}
	}
	if a.showTicks {
		for i := a.lowestTick; i <= a.highestTick && i < len(a.ticks); i++ {
			if i < 0 {
				continue
			}
			t := a.CoordToPixel(a.ticks[i])
			if a.horizontal() {
				p.Line(Pt(t, origin.Y-a.tickLengthIn*outward), Pt(t, origin.Y+a.tickLengthOut*outward), a.tickPen)
			} else {
				p.Line(Pt(origin.X-a.tickLengthIn*outward, t), Pt(origin.X+a.tickLengthOut*outward, t), a.tickPen)
			}
		}
		for _, sub := range a.subTicks {
			t := a.CoordToPixel(sub)
			if a.horizontal() {
				p.Line(Pt(t, origin.Y-a.subTickLengthIn*outward), Pt(t, origin.Y+a.subTickLengthOut*outward), a.subTickPen)
			} else {
				p.Line(Pt(origin.X-a.subTickLengthIn*outward, t), Pt(origin.X+a.subTickLengthOut*outward, t), a.subTickPen)
			}
		}
	}
	p.PopAntialiasing()

	labelOffset := math.Max(a.tickLengthOut, a.subTickLengthOut) + a.tickLabelPadding
	maxLabelExtent := 0.0
	a.tickLabelsBox = Rect{}
	if a.showTickLabels {
		for i := a.lowestTick; i <= a.highestTick && i < len(a.tickLabels); i++ {
			if i < 0 {
				continue
			}
			label := a.tickLabelArtifact(p, a.tickLabels[i])
			size := label.Size()
			// rotated labels occupy a transposed box
			boxW, boxH := size.X, size.Y
			if a.tickLabelRotated {
				boxW, boxH = size.Y, size.X
			}
			t := a.CoordToPixel(a.ticks[i])
			var box Rect
			switch a.side {
			case AxisBottom:
				box = RectXYWH(t-boxW/2, origin.Y+labelOffset, boxW, boxH)
			case AxisTop:
				box = RectXYWH(t-boxW/2, origin.Y-labelOffset-boxH, boxW, boxH)
			case AxisLeft:
				box = RectXYWH(origin.X-labelOffset-boxW, t-boxH/2, boxW, boxH)
			case AxisRight:
				box = RectXYWH(origin.X+labelOffset, t-boxH/2, boxW, boxH)
			}
			if a.tickLabelRotated {
				label.DrawVertical(box.Min)
			} else {
				label.DrawAt(box.Min)
			}
			extent := boxH
			if !a.horizontal() {
				extent = boxW
			}
			if extent > maxLabelExtent {
				maxLabelExtent = extent
			}
			if a.tickLabelsBox.Empty() {
				a.tickLabelsBox = box
			} else {
				a.tickLabelsBox = unionRect(a.tickLabelsBox, box)
			}
		}
	}

	a.labelBox = Rect{}
	if a.label != "" {
		label := p.Label(a.labelFont, a.label, a.labelColor)
		size := label.Size()
		titleOffset := labelOffset + maxLabelExtent + a.labelPadding
		center := a.axisRect.Center()
		switch a.side {
		case AxisBottom:
			a.labelBox = RectXYWH(center.X-size.X/2, origin.Y+titleOffset, size.X, size.Y)
			label.DrawAt(a.labelBox.Min)
		case AxisTop:
			a.labelBox = RectXYWH(center.X-size.X/2, origin.Y-titleOffset-size.Y, size.X, size.Y)
			label.DrawAt(a.labelBox.Min)
		case AxisLeft:
			a.labelBox = RectXYWH(origin.X-titleOffset-size.Y, center.Y-size.X/2, size.Y, size.X)
			label.DrawVertical(a.labelBox.Min)
		case AxisRight:
			a.labelBox = RectXYWH(origin.X+titleOffset, center.Y-size.X/2, size.Y, size.X)
			label.DrawVertical(a.labelBox.Min)
		}
	}
	a.drawn = true
}

func unionRect(a, b Rect) Rect {
	return Rect{
		Min: Pt(math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y)),
		Max: Pt(math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y)),
	}
}

// SelectTest reports which selectable part of the axis contains pos, using
// the bounding boxes recorded by the last draw pass. Before the first draw
// it always reports AxisPartNone.
func (a *Axis) SelectTest(pos Point) AxisPart {
	if !a.drawn {
		return AxisPartNone
	}
	switch {
	case a.selectableParts&AxisPartLabel != 0 && !a.labelBox.Empty() && a.labelBox.Contains(pos):
		return AxisPartLabel
	case a.selectableParts&AxisPartTickLabels != 0 && !a.tickLabelsBox.Empty() && a.tickLabelsBox.Contains(pos):
		return AxisPartTickLabels
	case a.selectableParts&AxisPartBackbone != 0 && a.backboneBox.Contains(pos):
		return AxisPartBackbone
	}
	return AxisPartNone
}

func (a *Axis) SelectedParts() AxisPart { return a.selectedParts }

func (a *Axis) SetSelectedParts(parts AxisPart) {
	a.selectedParts = parts
}

func (a *Axis) SetSelectableParts(parts AxisPart) {
	a.selectableParts = parts
}
