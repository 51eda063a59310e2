package motd_test

import (
	"fmt"
	"time"

	"github.com/mcpetools/motd"
)

func ExamplePing() {
	const address = "127.0.0.1:19132"

	// Ping the target address. This waits up to 5 seconds for the pong;
	// motd.PingContext and motd.PingTimeout may be used to wait for any
	// other duration.
	pong, err := motd.Ping(address)
	if err != nil {
		panic("error pinging " + address + ": " + err.Error())
	}

	fmt.Println(pong.Status.MOTD)
	fmt.Printf("%v/%v players online\n", pong.Status.PlayerCount, pong.Status.MaxPlayerCount)
	fmt.Printf("up for %v\n", time.Duration(pong.Uptime)*time.Millisecond)
}

func ExampleStatus() {
	const address = "127.0.0.1:19132"

	status, err := motd.StatusTimeout(address, time.Second*2)
	if err != nil {
		panic("error querying " + address + ": " + err.Error())
	}

	// Prints -1/-1 if the server did not include player counts in its
	// server id string.
	fmt.Printf("%v/%v players online\n", status.PlayerCount, status.MaxPlayerCount)
}
