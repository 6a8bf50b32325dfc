package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/jasonlvhit/gocron"
	"github.com/peterbourgon/ff"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/geodesic-server/api"
	"github.com/a-bouts/geodesic-server/xmpp"

	_ "net/http/pprof"
)

func main() {

	fs := flag.NewFlagSet("geodesic-server", flag.ExitOnError)
	var (
		port         = fs.Int("port", 8888, "listen port")
		debug        = fs.Bool("debug", false, "debug logs")
		cpuprofile   = fs.Bool("cpuprofile", false, "profile destination requests")
		xmppHost     = fs.String("xmpp-host", "", "")
		xmppJid      = fs.String("xmpp-jid", "", "")
		xmppPassword = fs.String("xmpp-password", "", "")
		xmppTo       = fs.String("xmpp-to", "", "")
	)
	ff.Parse(fs, os.Args[1:], ff.WithEnvVarNoPrefix())

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	x := xmpp.Xmpp{Config: xmpp.Config{Host: *xmppHost, Jid: *xmppJid, Password: *xmppPassword, To: *xmppTo}}
	if x.Configured() {
		go func() {
			if err := x.Send("geodesic-server starting"); err != nil {
				log.Warnf("startup notification : %v", err)
			}
		}()
	}

	s := gocron.NewScheduler()
	job := s.Every(60).Seconds()
	job.Do(logRequests)
	go s.Start()

	router := api.InitServer(*cpuprofile)

	log.Infof("Start server on port %d", *port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", *port), handlers.CombinedLoggingHandler(os.Stdout, router)))
}

func logRequests() {
	log.Debugf("%d requests served", api.Requests())
}
