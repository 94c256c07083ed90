// Package web serves a live view of the filter: each requested run is
// re-simulated and its steps streamed to connected browsers over a
// websocket, where they are charted as they arrive.
package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"kalman-go/filter"
)

type wsStep struct {
	Step     int     `json:"step"`
	Truth    float64 `json:"truth"`
	Z        float64 `json:"z"`
	Estimate float64 `json:"estimate"`
	P        float64 `json:"p"`
}

type wsDone struct {
	Done  bool `json:"done"`
	Steps int  `json:"steps"`
}

type Server struct {
	Hub    *Hub
	params filter.Params
	mu     sync.Mutex
}

func NewServer(params filter.Params) *Server {
	s := &Server{
		Hub:    NewHub(),
		params: params,
	}
	s.Hub.OnMessage = func(msg []byte) {
		if string(msg) == "run" {
			go s.runOnce()
		}
	}
	return s
}

// runOnce simulates a fresh run and streams it step by step to all
// connected clients, ending with a done marker. Runs are serialized so
// interleaved requests cannot mix their steps.
func (s *Server) runOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := filter.Run(s.params)
	if err != nil {
		log.Printf("simulation failed: %v", err)
		return
	}
	for k := 0; k < res.Len(); k++ {
		b, err := json.Marshal(wsStep{
			Step:     k,
			Truth:    res.Truth[k],
			Z:        res.Measurements[k],
			Estimate: res.Estimates[k],
			P:        res.ErrorEstimates[k],
		})
		if err != nil {
			log.Printf("marshal step %d: %v", k, err)
			return
		}
		s.Hub.Broadcast(b)
	}
	b, _ := json.Marshal(wsDone{Done: true, Steps: res.Len()})
	s.Hub.Broadcast(b)
}

// Handler returns the HTTP mux: the chart page at / and the stream at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(s.Hub, w, r)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, indexHTML)
	})
	return mux
}

func (s *Server) Start(port int) {
	go s.Hub.Run()

	addr := fmt.Sprintf(":%d", port)
	log.Printf("HTTP Server listening on %s", addr)
	if err := http.ListenAndServe(addr, s.Handler()); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
