package api

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/gorilla/mux"
	"github.com/pkg/profile"

	"github.com/a-bouts/geodesic-server/api/model"
	"github.com/a-bouts/geodesic-server/latlon"
)

type server struct {
	cpuprofile bool
}

var requests uint64

// Requests returns the number of computation requests served since startup.
func Requests() uint64 {
	return atomic.LoadUint64(&requests)
}

func InitServer(cpuprofile bool) *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	s := server{cpuprofile: cpuprofile}

	api := router.PathPrefix("/").Subrouter()

	api.HandleFunc("/geo/-/healthz", s.healthz).Methods(http.MethodGet)

	apiV1 := router.PathPrefix("/geo/api/v1").Subrouter()
	apiV1.HandleFunc("/destination", s.destination).Methods("POST")
	apiV1.HandleFunc("/destination/{lat}/{lon}/{distance}/{bearing}", s.destinationQuick).Methods("GET")
	apiV1.HandleFunc("/distance", s.distance).Methods("POST")

	return router
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	json.NewEncoder(w).Encode(health{Status: "Ok"})
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func (s *server) destination(w http.ResponseWriter, req *http.Request) {
	if s.cpuprofile {
		defer profile.Start().Stop()
	}
	atomic.AddUint64(&requests, 1)

	fields := log.Fields{
		"action": "destination",
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	requestLogger := log.WithFields(fields)

	var q model.DestinationQuery
	if err := json.NewDecoder(req.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	radius := q.Radius
	if radius == 0 {
		radius = latlon.EarthRadius
	}

	start := latlon.New(latlon.ToRadians(q.Start.Lat), latlon.ToRadians(q.Start.Lon))

	to, err := latlon.DestinationWithRadius(start, q.Distance, latlon.ToRadians(q.Bearing), radius)
	if err != nil {
		requestLogger.Infof("Destination from (%.4f,%.4f) rejected : %v", q.Start.Lat, q.Start.Lon, err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	requestLogger.Infof("Destination from (%.4f,%.4f) %.0fm at %.1f°", q.Start.Lat, q.Start.Lon, q.Distance, q.Bearing)

	json.NewEncoder(w).Encode(model.Point{Lat: latlon.ToDegrees(to.Lat), Lon: latlon.ToDegrees(to.Lon)})
}

func (s *server) destinationQuick(w http.ResponseWriter, req *http.Request) {
	atomic.AddUint64(&requests, 1)

	lat, err := strconv.ParseFloat(mux.Vars(req)["lat"], 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(mux.Vars(req)["lon"], 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	distance, err := strconv.ParseFloat(mux.Vars(req)["distance"], 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	bearing, err := strconv.ParseFloat(mux.Vars(req)["bearing"], 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	start := latlon.New(latlon.ToRadians(lat), latlon.ToRadians(lon))

	// ParseFloat accepts NaN and Inf, DestinationWithRadius does not.
	to, err := latlon.DestinationWithRadius(start, distance, latlon.ToRadians(bearing), latlon.EarthRadius)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	log.Infof("Destination (%f,%f) %.0fm at %.1f° : (%f,%f)", lat, lon, distance, bearing, latlon.ToDegrees(to.Lat), latlon.ToDegrees(to.Lon))

	json.NewEncoder(w).Encode(model.Point{Lat: latlon.ToDegrees(to.Lat), Lon: latlon.ToDegrees(to.Lon)})
}

func (s *server) distance(w http.ResponseWriter, req *http.Request) {
	atomic.AddUint64(&requests, 1)

	fields := log.Fields{
		"action": "distance",
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	requestLogger := log.WithFields(fields)

	var q model.DistanceQuery
	if err := json.NewDecoder(req.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	from := latlon.New(latlon.ToRadians(q.From.Lat), latlon.ToRadians(q.From.Lon))
	to := latlon.New(latlon.ToRadians(q.To.Lat), latlon.ToRadians(q.To.Lon))

	d, b := latlon.DistanceAndBearing(from, to)

	requestLogger.Infof("Distance (%.4f,%.4f) to (%.4f,%.4f) : %.0fm at %.1f°", q.From.Lat, q.From.Lon, q.To.Lat, q.To.Lon, d, latlon.ToDegrees(b))

	json.NewEncoder(w).Encode(model.DistanceResult{Distance: d, Bearing: latlon.ToDegrees(b)})
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		netIP := net.ParseIP(ip)
		if netIP != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}
	return "", fmt.Errorf("No valid ip found")
}
