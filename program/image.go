package program

import (
	"io"

	"github.com/ezrec/isacodec/isa"
)

// Image is a flat sequence of words, one per instruction address, with no
// header. Each word is stored big-endian in the fewest whole bytes that hold
// the profile's word width.
type Image struct {
	Profile *isa.Profile
	Words   []isa.Word
}

// WordBytes returns the stored size of one word.
func (img *Image) WordBytes() int {
	return int(img.Profile.WordBits+7) / 8
}

// Unmarshal loads the image from a reader, replacing any existing words.
func (img *Image) Unmarshal(file io.Reader) (err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	size := img.WordBytes()
	if len(data)%size != 0 {
		err = ErrTruncated
		return
	}

	words := make([]isa.Word, 0, len(data)/size)
	for len(data) > 0 {
		var word isa.Word
		for _, b := range data[:size] {
			word = (word << 8) | isa.Word(b)
		}
		words = append(words, word)
		data = data[size:]
	}

	img.Words = words

	return
}

// Marshal writes the image's words to a writer.
func (img *Image) Marshal(file io.Writer) (err error) {
	size := img.WordBytes()
	data := make([]byte, 0, size*len(img.Words))

	for _, word := range img.Words {
		if uint32(word)&^img.Profile.WordMask() != 0 {
			err = isa.ErrWordOverflow{Word: word, Bits: img.Profile.WordBits}
			return
		}
		for n := size - 1; n >= 0; n-- {
			data = append(data, byte(word>>(8*n)))
		}
	}

	_, err = file.Write(data)

	return
}
