package dom

import (
	"fmt"

	"github.com/glintkit/glint-events/pkg/decode"
)

// File describes one dropped file. Payload is an opaque reference to the
// underlying binary data; this layer only threads it through, reading file
// bytes is entirely up to the consumer.
type File struct {
	Name    string
	MIME    string
	Size    int
	Payload any
}

// DataTransfer is the decoded drag payload: dropped files, the MIME types on
// offer, and the drop effect currently proposed by the target.
type DataTransfer struct {
	Files      []File
	Types      []string
	DropEffect string
}

// DragEvent is the decoded form of a native drag event.
type DragEvent struct {
	MouseEvent
	DataTransfer DataTransfer
}

func decodeFile(r decode.Raw) (File, error) {
	var f File
	var err error
	if f.Name, err = r.String("name"); err != nil {
		return File{}, err
	}
	if f.MIME, err = r.String("type"); err != nil {
		return File{}, err
	}
	if f.Size, err = r.Int("size"); err != nil {
		return File{}, err
	}
	// Keep the whole raw object as the payload handle.
	f.Payload = r
	return f, nil
}

func decodeDataTransfer(r decode.Raw) (DataTransfer, error) {
	var dt DataTransfer
	var err error
	if dt.Files, err = decode.List(r, "files", decodeFile); err != nil {
		return DataTransfer{}, err
	}
	if dt.Types, err = r.StringList("types"); err != nil {
		return DataTransfer{}, err
	}
	if dt.DropEffect, err = r.String("dropEffect"); err != nil {
		return DataTransfer{}, err
	}
	return dt, nil
}

// DecodeDragEvent decodes a raw drag-shaped event.
func DecodeDragEvent(r decode.Raw) (DragEvent, error) {
	var ev DragEvent
	var err error
	if ev.MouseEvent, err = DecodeMouseEvent(r); err != nil {
		return DragEvent{}, fmt.Errorf("drag: %w", err)
	}
	dt, err := r.Object("dataTransfer")
	if err != nil {
		return DragEvent{}, fmt.Errorf("drag: %w", err)
	}
	if ev.DataTransfer, err = decodeDataTransfer(dt); err != nil {
		return DragEvent{}, fmt.Errorf("drag: %w", err)
	}
	return ev, nil
}
