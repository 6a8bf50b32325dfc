// Package xmpp sends operational notifications to a chat recipient.
package xmpp

import (
	"crypto/tls"
	"errors"
	"strings"

	xmpp "github.com/mattn/go-xmpp"
	log "github.com/sirupsen/logrus"
)

type (
	Config struct {
		Host     string
		Jid      string
		Password string
		To       string
	}

	Xmpp struct {
		Config Config
	}
)

// Configured tells whether enough configuration is present to send anything.
func (x Xmpp) Configured() bool {
	return len(x.Config.Jid) > 0 && len(x.Config.Password) > 0 && len(x.Config.To) > 0
}

func serverName(jid string) string {
	return strings.Split(jid, "@")[1]
}

// Send delivers a chat message to the configured recipient.
func (x Xmpp) Send(message string) error {

	if !x.Configured() {
		return errors.New("missing xmpp config")
	}

	host := x.Config.Host
	if len(host) == 0 {
		host = serverName(x.Config.Jid)
	}

	xmpp.DefaultConfig = tls.Config{
		InsecureSkipVerify: true,
	}

	options := xmpp.Options{
		Host:     host,
		User:     x.Config.Jid,
		Password: x.Config.Password,
		NoTLS:    true,
		StartTLS: true,
		Debug:    false,
		Session:  false,
		Status:   "chat",
	}

	talk, err := options.NewClient()
	if err != nil {
		log.Errorf("xmpp client : %v", err)
		return err
	}
	defer talk.Close()

	if _, err := talk.Send(xmpp.Chat{Remote: x.Config.To, Type: "chat", Text: message}); err != nil {
		return err
	}

	return nil
}
