package pkg_test

import (
	"fmt"
	"time"

	rp "github.com/moisespsena-go/rollpost/pkg"
)

func Example() {
	post, err := rp.ParsePath(rp.DefaultPostsDir, "_posts/2023-01-01-hello-world.md")
	if err != nil {
		panic(err)
	}
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	fmt.Println(post.Title)
	fmt.Println(post.Roll(today).Path())
	// Output:
	// hello-world
	// _posts/2024-06-15-hello-world.md
}
