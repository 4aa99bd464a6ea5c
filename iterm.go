package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/term"
)

type FileDescriptor interface {
	Fd() uintptr
}

func IsTerminal(fd FileDescriptor) bool {
	return term.IsTerminal(int(fd.Fd()))
}

type ITermImage struct {
	img image.Image
	alt string
}

// WriteTo implements the io.WriterTo interface, writing an iTerm 1337 escaped image.
func (i *ITermImage) WriteTo(w io.Writer) (int64, error) {
	str, err := ITermEncodePNGToString(i.img, i.altText())
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, str)
	return int64(n), err
}

func (i *ITermImage) String() string {
	str, err := ITermEncodePNGToString(i.img, i.altText())
	if err != nil {
		return err.Error()
	}
	return str
}

func (i *ITermImage) altText() string {
	if i.alt == "" {
		return "[iTerm Image]"
	}
	return "[" + i.alt + "]"
}

func ITermEncodePNGToString(img image.Image, alt string) (str string, err error) {
	b := new(bytes.Buffer)
	err = png.Encode(b, img)
	if err != nil {
		return
	}
	bytes := b.Bytes()
	base64str := base64.StdEncoding.EncodeToString(bytes)
	str = fmt.Sprintf("\033]1337;File=inline=1;size=%d:%s\a%s\n", len(bytes), base64str, alt)
	return
}

// renderImg writes img to out, inline when requested and as a plain PNG
// otherwise.
func renderImg(img image.Image, alt string, inline bool, out io.Writer) error {
	if inline {
		itermImg := &ITermImage{img, alt}
		if _, err := itermImg.WriteTo(out); err != nil {
			return err
		}
		return nil
	}
	b := new(bytes.Buffer)
	if err := png.Encode(b, img); err != nil {
		return err
	}
	_, err := b.WriteTo(out)
	return err
}
