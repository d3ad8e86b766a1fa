// Package cacherine provides a fixed-capacity in-process key-value
// cache with interchangeable eviction policies (FIFO, ephemeral FIFO,
// LRU, MRU, LFU) and an optional monitoring layer that observes
// hit/miss behavior and latency and raises threshold alerts.
//
// Basic usage:
//
//	cache, err := cacherine.New(cacherine.PolicyLRU, 100)
//	if err != nil {
//		log.Fatal(err)
//	}
//	cache.Set("answer", 42)
//	value, ok := cache.Get("answer")
//
// A monitored cache records per-Get latency and hit/miss outcomes and
// evaluates alert thresholds on a recurring timer:
//
//	alerts := cacherine.NewAlertConfig(func(msg string) {
//		log.Println("ALERT:", msg)
//	}).WithCheckInterval(30 * time.Second)
//
//	mc, err := cacherine.NewMonitored(cacherine.PolicyLFU, 100, alerts)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer mc.Close()
//
// All operations on a cache instance are serialized behind a single
// per-instance mutex, so any policy is safe for concurrent callers.
package cacherine
