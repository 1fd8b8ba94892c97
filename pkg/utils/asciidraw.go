package utils

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAsciiFrame = errors.New("invalid ascii frame")

type AsciiFrameField struct {
	// Name of the field
	Name string

	// Units within the frame the field begins from
	Begin int

	// Field width
	Width int
}

// The last unit within the frame used by this field
func (f *AsciiFrameField) TopUnit() int {
	return f.PastTopUnit() - 1
}

// The first unit within the frame used by the next field
func (f *AsciiFrameField) PastTopUnit() int {
	return f.Begin + f.Width
}

type AsciiFrameUnitLayout uint

const (
	// Units increase left to right (MSB-first register documentation)
	AsciiFrameUnitLayout_LeftToRight AsciiFrameUnitLayout = iota
	// Units increase right to left
	AsciiFrameUnitLayout_RightToLeft
)

type asciiFrame struct {
	fields     []AsciiFrameField
	frameWidth int
	unit       string
	leftpad    int
	layout     AsciiFrameUnitLayout
}

func (f *asciiFrame) TopUnit() int {
	return f.frameWidth - 1
}

func writeRow(text string, textDecorationExtraLength int, filler string, length int, builder *strings.Builder) {
	padding := length - len(text) - textDecorationExtraLength
	leftpadLength := padding / 2
	rightpadLength := padding - leftpadLength

	builder.WriteString(strings.Repeat(filler, max(leftpadLength, 0)))
	builder.WriteString(text)
	builder.WriteString(strings.Repeat(filler, max(rightpadLength, 0)))
}

func (f *asciiFrame) Draw() string {
	const (
		bodySplitter   string = "|"
		borderSplitter string = "+"
		borderBody     string = "-"
		arrowTipLeft   string = "<-"
		arrowBody      string = "-"
		arrowTipRight  string = "->"
		indexBody      string = " "
		arrowSplitter  string = " "
	)

	type Entry struct {
		index     string
		name      string
		width     string
		minLength int
	}

	leftpad := strings.Repeat(" ", f.leftpad)

	entries := make([]Entry, len(f.fields))

	for i := range entries {
		field := &f.fields[i]

		if f.layout == AsciiFrameUnitLayout_RightToLeft {
			field = &f.fields[len(f.fields)-i-1]
		}

		entry := &entries[i]

		entry.index = fmt.Sprintf("%v", field.Begin)

		if f.layout == AsciiFrameUnitLayout_RightToLeft {
			entry.index = fmt.Sprintf("%v", field.TopUnit())
		}

		entry.name = fmt.Sprintf(" %v ", field.Name)
		entry.width = fmt.Sprintf(" %v %v ", field.Width, f.unit)
		entry.minLength = Max([]int{len(entry.index), len(entry.name), len(arrowTipLeft) + len(entry.width) + len(arrowTipRight)})
	}

	var indicesRow, headerRow, bodyRow, footerRow, widthsRow strings.Builder

	for _, row := range []*strings.Builder{&indicesRow, &headerRow, &bodyRow, &footerRow, &widthsRow} {
		row.WriteString(leftpad)
	}

	for _, entry := range entries {
		indicesRow.WriteString(entry.index)
		indicesRow.WriteString(strings.Repeat(indexBody, entry.minLength-len(entry.index)+1))
		headerRow.WriteString(borderSplitter)
		headerRow.WriteString(strings.Repeat(borderBody, entry.minLength))
		bodyRow.WriteString(bodySplitter)
		writeRow(entry.name, 0, " ", entry.minLength, &bodyRow)
		footerRow.WriteString(borderSplitter)
		footerRow.WriteString(strings.Repeat(borderBody, entry.minLength))
		widthsRow.WriteString(arrowSplitter)
		widthsRow.WriteString(arrowTipLeft)
		writeRow(entry.width, len(arrowTipLeft)+len(arrowTipRight), arrowBody, entry.minLength, &widthsRow)
		widthsRow.WriteString(arrowTipRight)
	}

	if f.layout == AsciiFrameUnitLayout_LeftToRight {
		indicesRow.WriteString(fmt.Sprint(f.TopUnit()))
	} else {
		indicesRow.WriteString("0")
	}

	headerRow.WriteString(borderSplitter)
	bodyRow.WriteString(bodySplitter)
	footerRow.WriteString(borderSplitter)
	widthsRow.WriteString(" ")

	var result strings.Builder

	for _, row := range []*strings.Builder{&indicesRow, &headerRow, &bodyRow, &footerRow, &widthsRow} {
		result.WriteString(row.String())
		result.WriteString("\n")
	}

	return result.String()
}

func fillAsciiFrameGaps(fields []AsciiFrameField, frameWidth int) ([]AsciiFrameField, error) {
	result := make([]AsciiFrameField, 0, len(fields))
	currentUnit := 0

	for _, field := range fields {
		if field.Width <= 0 {
			return nil, MakeError(ErrInvalidAsciiFrame, "field '%v' has invalid width %v", field.Name, field.Width)
		}

		if field.Begin > currentUnit {
			result = append(result, AsciiFrameField{
				Name:  "(unused)",
				Begin: currentUnit,
				Width: field.Begin - currentUnit,
			})
		} else if field.Begin < currentUnit {
			return nil, MakeError(ErrInvalidAsciiFrame, "field '%v' overlaps the previous field or is out of order", field.Name)
		}

		result = append(result, field)

		currentUnit = field.PastTopUnit()
	}

	if currentUnit > frameWidth {
		return nil, MakeError(ErrInvalidAsciiFrame, "fields span %v units but the frame is only %v units wide", currentUnit, frameWidth)
	}

	if currentUnit < frameWidth {
		result = append(result, AsciiFrameField{
			Name:  "(unused)",
			Begin: currentUnit,
			Width: frameWidth - currentUnit,
		})
	}

	return result, nil
}

// Prints an ascii diagram of a binary frame composed of contiguous fields of different unit lengths.
// Fields must be sorted by position and must not overlap, gaps are drawn as "(unused)" fields.
func AsciiFrame(fields []AsciiFrameField, frameWidth int, unit string, layout AsciiFrameUnitLayout, leftpad int) (string, error) {
	allFields, err := fillAsciiFrameGaps(fields, frameWidth)
	if err != nil {
		return "", err
	}

	frame := asciiFrame{
		fields:     allFields,
		frameWidth: allFields[len(allFields)-1].PastTopUnit(),
		unit:       unit,
		leftpad:    leftpad,
		layout:     layout,
	}

	return frame.Draw(), nil
}
