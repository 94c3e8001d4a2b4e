package uid

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/gommon/log"
)

// DefaultMachineID is used when Generate runs before Init.
const DefaultMachineID = 1

var (
	node *snowflake.Node
	once sync.Once
)

// Init sets up the snowflake node. Only the first call has any effect.
func Init(machineID int64) {
	once.Do(func() {
		var err error
		node, err = snowflake.NewNode(machineID)
		if err != nil {
			log.Fatalf("failed to initialize snowflake node: %v", err)
		}
	})
}

func Generate() int64 {
	Init(DefaultMachineID)
	return node.Generate().Int64()
}
