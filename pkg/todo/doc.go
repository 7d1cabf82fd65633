/*
Package todo is a small to-do application built on rofiflow components.

It shows the intended host loop: each step displays exactly one component, and the
returned Outcome decides which page comes next.

	store := memory.NewTodoStore()
	app := todo.NewApp(process.NewRunner(), store)
	if err := app.Run(ctx); err != nil {
		log.Fatal(err)
	}

Persisted items live behind the Store port; memory, file and redis adapters exist
under pkg/adapters.
*/
package todo
