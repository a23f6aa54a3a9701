// Package jobs provides scheduled background tasks for the logistics system.
//
// Jobs run on cron schedules via github.com/robfig/cron/v3 and are managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(shipmentUoWFactory, advanceHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// ShipmentDelayJob scans every minute for in-transit shipments past their
// expected arrival time and moves them to Delayed through the regular
// advance handler. A delayed shipment keeps its driver and vehicle claim
// until a dispatcher cancels it.
//
// # Error Handling
//
// Transition races with concurrent API calls (a shipment delivered between
// the scan and the flag) are expected and skipped. Everything else is
// logged and retried on the next tick.
package jobs
