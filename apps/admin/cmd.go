package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/edurecords/portal/core/student"
	"github.com/edurecords/portal/storage/database"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db      *sqlx.DB
	stdRepo student.Repository
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate - apply the database schema")
	fmt.Println("  addstudent -roll ROLL [-name NAME] [-section SECTION] [-attendance N] [-assignments N] - seed a student profile")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addStudentCmd := flag.NewFlagSet("addstudent", flag.ExitOnError)
	roll := addStudentCmd.String("roll", "", "The student's roll number (required).")
	name := addStudentCmd.String("name", "", "The student's name.")
	section := addStudentCmd.String("section", "", "The student's section.")
	attendance := addStudentCmd.Int("attendance", 0, "Attendance percentage.")
	assignments := addStudentCmd.Int("assignments", 0, "Completed assignment count.")

	switch args[1] {
	case "migrate":
		return cli.migrate()
	case "addstudent":
		if err := addStudentCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *roll == "" {
			addStudentCmd.Usage()
			return errHelp
		}
		return cli.addStudent(student.Student{
			Roll:        *roll,
			Name:        *name,
			Section:     *section,
			Attendance:  *attendance,
			Assignments: *assignments,
		})
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) migrate() error {
	if err := database.Migrate(cli.db); err != nil {
		return err
	}
	logger.Print("schema up to date")
	return nil
}

func (cli *commandLine) addStudent(std student.Student) error {
	if err := cli.stdRepo.UpsertStudent(std); err != nil {
		return err
	}
	logger.Printf("student %s saved", std.Roll)
	return nil
}
