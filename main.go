package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/crossmesh/chainid/app"
	"github.com/crossmesh/chainid/chain"
)

func main() {

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if len(os.Args) < 3 {
		log.Fatal("Usage: chainid <config.yml> <chain>...")
	}
	absConfigPath, _ := filepath.Abs(os.Args[1])

	app.InitConfig(absConfigPath, "")
	app.InitLogger()

	for _, arg := range os.Args[2:] {
		c, err := resolveChain(arg)
		if err != nil {
			log.Fatal("[CHAINID] ", err.Error())
		}
		wire, err := json.Marshal(c)
		if err != nil {
			log.Fatal("[CHAINID] Error marshalling chain: ", err.Error())
		}
		log.Debug("[CHAINID] Resolved ", arg)
		fmt.Printf("%s\tid=%d\tjson=%s\n", c.String(), c.Uint16(), wire)
	}
}

// resolveChain accepts either the numeric wire value or the textual form.
func resolveChain(arg string) (chain.Chain, error) {
	if id, err := strconv.ParseUint(arg, 10, 16); err == nil {
		return chain.FromUint16(uint16(id)), nil
	}
	return chain.ParseChain(arg)
}
