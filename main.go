// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/planxhq/planx/cmd"
	_ "github.com/planxhq/planx/cmd/company"
	_ "github.com/planxhq/planx/cmd/migrate"
	_ "github.com/planxhq/planx/cmd/serve"
	_ "github.com/planxhq/planx/cmd/token"
	_ "github.com/planxhq/planx/cmd/user"
)

func main() {
	cmd.Execute()
}
