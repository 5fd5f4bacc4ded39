package codec_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ssargent/mavcodec/pkg/codec"
	"github.com/ssargent/mavcodec/pkg/dialect/openhd"
)

// ExampleChannel_Pack packs a typed message onto a channel.
func ExampleChannel_Pack() {
	var ch codec.Channel
	out := make([]byte, codec.MaxFrameLen)

	n := ch.Pack(1, 1, out, &openhd.OpenhdAirLoad{Cpuload: 42, Temp: 55})

	fmt.Printf("%x\n", out[:n])
	fmt.Println("next sequence:", ch.Sequence())

	// Output:
	// fd020000000101ce04002a375569
	// next sequence: 1
}

// ExampleParse validates a frame and reads fields without a full decode.
func ExampleParse() {
	data, _ := hex.DecodeString("fd020000000101ce04002a375569")

	f, err := codec.Parse(data, openhd.NewDialect())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("message:", f.MessageID)
	fmt.Println("cpuload:", openhd.OpenhdAirLoadCpuload(f))
	fmt.Println("temp:", openhd.OpenhdAirLoadTemp(f))

	data[10] = 43
	_, err = codec.Parse(data, openhd.NewDialect())
	fmt.Println(errors.Is(err, codec.ErrChecksumMismatch))

	// Output:
	// message: 1230
	// cpuload: 42
	// temp: 55
	// true
}

// ExampleEncodeValues packs a message from name/value pairs.
func ExampleEncodeValues() {
	d := openhd.NewDialect()
	s, _ := d.ByName("STATUSTEXT")

	payload, err := codec.EncodeValues(s, codec.Values{"severity": 6, "text": "hello"})
	if err != nil {
		log.Fatal(err)
	}

	var ch codec.Channel
	out := make([]byte, codec.MaxFrameLen)
	n := ch.PackPayload(255, 190, out, s, payload)
	fmt.Println("frame length:", n)

	f, _ := d.Parse(out[:n])
	values := codec.DecodeValues(s, f.Payload)
	fmt.Println(values["text"], values["chunk_seq"])

	// Output:
	// frame length: 63
	// hello 0
}

// ExampleReader pulls frames out of a noisy byte stream.
func ExampleReader() {
	var ch codec.Channel
	var stream bytes.Buffer
	out := make([]byte, codec.MaxFrameLen)

	stream.WriteString("noise")
	stream.Write(out[:openhd.PackOpenhdAirLoad(&ch, 1, 1, out, 10, 50)])
	stream.Write(out[:openhd.PackHeartbeat(&ch, 1, 1, out, 2, 3, 0x51, 4, 4, 3)])

	r := codec.NewReader(&stream, openhd.NewDialect())
	for {
		f, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(f.Sequence, f.MessageID)
	}
	fmt.Println("skipped:", r.Stats().SkippedBytes)

	// Output:
	// 0 1230
	// 1 0
	// skipped: 5
}
